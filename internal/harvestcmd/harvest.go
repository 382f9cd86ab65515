// Package harvestcmd implements the harvester CLI commands.
package harvestcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/harvester/internal/exiftool"
	"github.com/lehigh-university-libraries/harvester/internal/harvesting"
	"github.com/lehigh-university-libraries/harvester/internal/models"
	"github.com/lehigh-university-libraries/harvester/internal/records"
	"github.com/lehigh-university-libraries/harvester/internal/results"
	"github.com/lehigh-university-libraries/harvester/internal/storage"
	"github.com/spf13/cobra"
)

// NewHarvestCmd creates the harvest command.
func NewHarvestCmd() *cobra.Command {
	var (
		inputDir        string
		csvPath         string
		reportDir       string
		verifyChecksums bool
	)

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Harvest technical metadata for digitized archival objects",
		Long: `Harvest walks a batch directory that holds one subdirectory per archival
object, joins each directory against the batch's descriptive export, runs
exiftool over every digitized asset, and writes one metadata XML record
into each object directory.

Directories without a descriptive record are skipped. A harvest error on a
matched object aborts the run.`,
		Example: `  # Harvest a batch, joining the first CSV found in the directory
  harvester harvest -i /data/batch_2019_03

  # Join a parquet export, verify fixity, and keep a run report
  harvester harvest -i /data/batch_2019_03 --csv /data/exports/batch.parquet \
    --verify-checksums --report ./reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeHarvest(cmd.Context(), inputDir, csvPath, reportDir, verifyChecksums)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Batch directory holding one subdirectory per archival object")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Descriptive export to join, .csv or .parquet (default: first .csv in the input directory)")
	cmd.Flags().StringVar(&reportDir, "report", "", "Directory to write a YAML run report into")
	cmd.Flags().BoolVar(&verifyChecksums, "verify-checksums", false, "Recompute asset checksums and warn when manifests disagree")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func executeHarvest(ctx context.Context, inputDir, csvPath, reportDir string, verifyChecksums bool) error {
	source, err := resolveSource(inputDir, csvPath)
	if err != nil {
		return err
	}

	loader := records.NewLoader(source)
	recs, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load descriptive records: %w", err)
	}

	store := storage.New()
	for _, rec := range recs {
		objectID, err := rec.Require(records.FieldObjectIdentifier)
		if err != nil {
			return fmt.Errorf("unusable descriptive export %s: %w", source, err)
		}
		store.Set(objectID, rec)
	}
	slog.Info("Loaded descriptive records", "source", source, "records", store.Len())

	tool := exiftool.New()
	service := harvesting.NewService(tool, verifyChecksums)

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var (
		summary       models.RunSummary
		objectResults []models.ObjectResult
	)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		summary.DirectoriesScanned++

		rec, ok := store.Get(entry.Name())
		if !ok {
			slog.Debug("No descriptive record for directory, skipping", "dir", entry.Name())
			summary.ObjectsSkipped++
			continue
		}
		summary.ObjectsMatched++

		slog.Info("Processing object",
			"object_id", entry.Name(),
			"progress", fmt.Sprintf("%d/%d", summary.ObjectsMatched, store.Len()))

		records.Normalize(rec)

		result, err := service.ProcessObject(ctx, filepath.Join(inputDir, entry.Name()), rec)
		summary.Instantiations += result.Instantiations
		summary.Pages += result.Pages
		summary.Warnings += len(result.Warnings)
		if err != nil {
			result.Error = err.Error()
			objectResults = append(objectResults, result)
			if reportDir != "" {
				saveReport(inputDir, source, tool.Binary(), verifyChecksums, objectResults, summary, reportDir)
			}
			return fmt.Errorf("failed to harvest %s: %w", entry.Name(), err)
		}

		summary.FilesWritten++
		objectResults = append(objectResults, result)
	}

	printSummary(summary)

	if reportDir != "" {
		saveReport(inputDir, source, tool.Binary(), verifyChecksums, objectResults, summary, reportDir)
	}

	return nil
}

// resolveSource picks the descriptive export to join: an explicitly named
// file, or the first CSV found in the input directory.
func resolveSource(inputDir, explicit string) (string, error) {
	if explicit != "" {
		ext := strings.ToLower(filepath.Ext(explicit))
		if ext != ".csv" && ext != ".parquet" {
			return "", fmt.Errorf("unsupported descriptive export %s (supported: .csv, .parquet)", explicit)
		}
		return explicit, nil
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return "", fmt.Errorf("failed to read input directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name[0] == '.' {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".csv") {
			return filepath.Join(inputDir, name), nil
		}
	}

	return "", fmt.Errorf("no csv file found in %s, declare one with --csv", inputDir)
}

// saveReport persists the run report; failures are logged, never fatal.
func saveReport(inputDir, source, tool string, verifyChecksums bool, objectResults []models.ObjectResult, summary models.RunSummary, reportDir string) {
	report := &results.Report{
		Config: results.RunConfig{
			InputDir:        inputDir,
			SourcePath:      source,
			Tool:            tool,
			VerifyChecksums: verifyChecksums,
			Timestamp:       time.Now().Format("20060102-150405"),
		},
		Results: objectResults,
		Summary: summary,
	}

	path, err := results.Save(report, reportDir)
	if err != nil {
		slog.Error("Failed to save run report", "err", err)
		return
	}

	fmt.Printf("\nRun report saved to: %s\n", path)
	fmt.Printf("Run 'harvester report --results %s' to view it again later\n", path)
}

func printSummary(summary models.RunSummary) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("HARVEST SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Directories scanned: %d\n", summary.DirectoriesScanned)
	fmt.Printf("Objects matched:     %d\n", summary.ObjectsMatched)
	fmt.Printf("Objects skipped:     %d\n", summary.ObjectsSkipped)
	fmt.Printf("Metadata files:      %d\n", summary.FilesWritten)
	fmt.Printf("Instantiations:      %d\n", summary.Instantiations)
	fmt.Printf("Pages:               %d\n", summary.Pages)
	if summary.Warnings > 0 {
		fmt.Printf("Warnings:            %d\n", summary.Warnings)
	}
	fmt.Println(strings.Repeat("=", 60))
}
