// Package results persists harvest run reports as YAML files.
package results

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lehigh-university-libraries/harvester/internal/models"
	"gopkg.in/yaml.v3"
)

// RunConfig captures the inputs that produced a report.
type RunConfig struct {
	InputDir        string `yaml:"inputdir" json:"input_dir"`
	SourcePath      string `yaml:"sourcepath" json:"source_path"`
	Tool            string `yaml:"tool" json:"tool"`
	VerifyChecksums bool   `yaml:"verifychecksums" json:"verify_checksums"`
	Timestamp       string `yaml:"timestamp" json:"timestamp"`
}

// Report is the persisted record of one harvest run.
type Report struct {
	Config  RunConfig             `yaml:"config" json:"config"`
	Results []models.ObjectResult `yaml:"results" json:"results"`
	Summary models.RunSummary     `yaml:"summary" json:"summary"`
}

// Save writes the report into dir as harvest-<timestamp>.yaml and returns
// the path written.
func Save(report *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("harvest-%s.yaml", report.Config.Timestamp))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	return path, nil
}

// Load reads a report written by Save.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report file: %w", err)
	}

	return &report, nil
}
