package harvestcmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/lehigh-university-libraries/harvester/internal/packages"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	var (
		inputDir    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect how a batch directory will be harvested",
		Long: `Inspect analyzes a batch directory without touching exiftool or the
descriptive export: it lists each object's units, their generations, and
the page labels a harvest would assign, and flags assets or manifests that
are missing on disk.`,
		Example: `  # List every object in a batch
  harvester inspect -i /data/batch_2019_03

  # Page through objects one at a time
  harvester inspect -i /data/batch_2019_03 --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInspect(inputDir, interactive)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Batch directory, or a single object directory")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Page through objects one at a time")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func executeInspect(inputDir string, interactive bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dirs, err := objectDirs(inputDir)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	totalUnits := 0

	for i, dir := range dirs {
		select {
		case <-ctx.Done():
			fmt.Println("\nInspection stopped.")
			return nil
		default:
		}

		units, err := printObject(dir)
		if err != nil {
			return err
		}
		totalUnits += units

		if interactive && i < len(dirs)-1 {
			fmt.Print("\nPress Enter for the next object (Ctrl+C to quit)...")

			inputCh := make(chan struct{})
			go func() {
				_, _ = reader.ReadString('\n')
				close(inputCh)
			}()

			select {
			case <-ctx.Done():
				fmt.Println("\nInspection stopped.")
				return nil
			case <-inputCh:
			}
		}
	}

	fmt.Printf("\n%d objects, %d units\n", len(dirs), totalUnits)

	return nil
}

// objectDirs lists the object directories of a batch. A directory with no
// subdirectories is treated as a single object.
func objectDirs(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name()[0] != '.' {
			dirs = append(dirs, filepath.Join(inputDir, entry.Name()))
		}
	}
	if len(dirs) == 0 {
		dirs = append(dirs, inputDir)
	}

	return dirs, nil
}

// printObject lists one object's units with the page labels a harvest
// would assign, and returns the unit count.
func printObject(dir string) (int, error) {
	units, err := packages.Analyze(dir)
	if err != nil {
		return 0, err
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Object: %s\n", filepath.Base(dir))
	fmt.Println(strings.Repeat("=", 60))

	if len(units) == 0 {
		fmt.Println("No recognizable assets.")
		return 0, nil
	}

	page := 1
	for _, unit := range units {
		label := fmt.Sprintf("Page %d", page)
		if unit.IsPrint() {
			label = "object"
		}

		for _, gen := range unit.Generations() {
			var notes []string
			if _, err := os.Stat(unit.Path(gen)); err != nil {
				notes = append(notes, "file missing")
			}
			if _, err := os.Stat(unit.Manifest(gen)); err != nil {
				notes = append(notes, "manifest missing")
			}

			line := fmt.Sprintf("  %-8s %-16s %s", label, gen.String(), filepath.Base(unit.Path(gen)))
			if len(notes) > 0 {
				line += "  (" + strings.Join(notes, ", ") + ")"
			}
			fmt.Println(line)
		}

		if !unit.IsPrint() {
			page++
		}
	}

	return len(units), nil
}
