package cmd

import (
	"github.com/lehigh-university-libraries/harvester/internal/harvestcmd"
	"github.com/spf13/cobra"
)

// addHarvestCommands attaches the harvester subcommands to the root.
func addHarvestCommands(root *cobra.Command) {
	root.AddCommand(harvestcmd.NewHarvestCmd())
	root.AddCommand(harvestcmd.NewInspectCmd())
	root.AddCommand(harvestcmd.NewReportCmd())
}
