package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "harvester",
		Short: "Technical metadata harvester for digitized archival packages",
		Long: `Harvester generates per-object metadata records for batches of digitized
archival material.

It pairs each object directory's preservation, access, and print files into
page units, extracts technical metadata with exiftool, joins the batch's
descriptive export, and writes one Dublin Core style XML record per object.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	addHarvestCommands(cmd)

	return cmd
}
