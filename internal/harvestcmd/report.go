package harvestcmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/harvester/internal/results"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	var (
		resultsFile string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a saved harvest run report",
		Long: `Report renders a YAML run report written by 'harvest --report' as
human-readable text, JSON, or CSV.`,
		Example: `  # Render the report as text
  harvester report --results ./reports/harvest-20190312-103613.yaml

  # Export the per-object rows as CSV
  harvester report --results ./reports/harvest-20190312-103613.yaml --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(resultsFile, format)
		},
	}

	cmd.Flags().StringVar(&resultsFile, "results", "", "Path to a YAML run report")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or csv")

	_ = cmd.MarkFlagRequired("results")

	return cmd
}

func executeReport(resultsFile, format string) error {
	report, err := results.Load(resultsFile)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		printTextReport(report)
		return nil
	case "json":
		return printJSONReport(report)
	case "csv":
		return printCSVReport(report)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, csv)", format)
	}
}

func printTextReport(report *results.Report) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("HARVEST RUN REPORT")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Input directory:    %s\n", report.Config.InputDir)
	fmt.Printf("Descriptive export: %s\n", report.Config.SourcePath)
	fmt.Printf("Extraction tool:    %s\n", report.Config.Tool)
	fmt.Printf("Checksums verified: %t\n", report.Config.VerifyChecksums)
	fmt.Printf("Timestamp:          %s\n", report.Config.Timestamp)

	printSummary(report.Summary)

	fmt.Println("\nDetailed Results")
	fmt.Println(strings.Repeat("-", 60))
	for _, result := range report.Results {
		fmt.Printf("\n%s\n", result.ObjectIdentifier)
		if result.Error != "" {
			fmt.Printf("  ❌ Error: %s\n", result.Error)
			continue
		}
		fmt.Printf("  Output:         %s\n", result.OutputPath)
		fmt.Printf("  Instantiations: %d\n", result.Instantiations)
		fmt.Printf("  Pages:          %d\n", result.Pages)
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", warning)
		}
	}
}

func printJSONReport(report *results.Report) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func printCSVReport(report *results.Report) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"Object Identifier", "Output Path", "Instantiations", "Pages", "Warnings", "Error"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range report.Results {
		row := []string{
			result.ObjectIdentifier,
			result.OutputPath,
			strconv.Itoa(result.Instantiations),
			strconv.Itoa(result.Pages),
			strings.Join(result.Warnings, "; "),
			result.Error,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
