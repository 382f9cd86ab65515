package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/harvester/internal/models"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	report := &Report{
		Config: RunConfig{
			InputDir:   "/data/batch_2019_03",
			SourcePath: "/data/batch_2019_03/export.csv",
			Tool:       "exiftool",
			Timestamp:  "20190312-103613",
		},
		Results: []models.ObjectResult{
			{
				ObjectIdentifier: "cusb_000123",
				OutputPath:       "/data/batch_2019_03/cusb_000123/cusb_000123_metadata.xml",
				Instantiations:   9,
				Pages:            4,
			},
			{
				ObjectIdentifier: "cusb_000124",
				Error:            "failed to read checksum",
			},
		},
		Summary: models.RunSummary{
			DirectoriesScanned: 3,
			ObjectsMatched:     2,
			ObjectsSkipped:     1,
			FilesWritten:       1,
			Instantiations:     9,
			Pages:              4,
		},
	}

	path, err := Save(report, filepath.Join(dir, "reports"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filepath.Base(path) != "harvest-20190312-103613.yaml" {
		t.Errorf("Unexpected report filename %s", filepath.Base(path))
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Config.InputDir != report.Config.InputDir {
		t.Errorf("Expected %s, got %s", report.Config.InputDir, loaded.Config.InputDir)
	}
	if len(loaded.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(loaded.Results))
	}
	if loaded.Results[0].Instantiations != 9 {
		t.Errorf("Expected 9 instantiations, got %d", loaded.Results[0].Instantiations)
	}
	if loaded.Results[1].Error != "failed to read checksum" {
		t.Errorf("Expected error to round-trip, got %q", loaded.Results[1].Error)
	}
	if loaded.Summary.ObjectsMatched != 2 {
		t.Errorf("Expected 2 matched, got %d", loaded.Summary.ObjectsMatched)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing report, got nil")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("results: [not balanced"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for malformed report, got nil")
	}
}
