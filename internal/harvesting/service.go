// Package harvesting drives the per-object pipeline: analyze the directory,
// build the metadata record, synthesize instantiations, and write the XML
// next to the assets it describes.
package harvesting

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lehigh-university-libraries/harvester/internal/dcxml"
	"github.com/lehigh-university-libraries/harvester/internal/models"
	"github.com/lehigh-university-libraries/harvester/internal/packages"
	"github.com/lehigh-university-libraries/harvester/internal/records"
)

// Service harvests technical metadata for archival objects.
type Service struct {
	synthesizer *dcxml.Synthesizer
}

// NewService creates a harvesting service around a technical metadata
// extractor.
func NewService(extractor dcxml.Extractor, verifyChecksums bool) *Service {
	return &Service{
		synthesizer: dcxml.NewSynthesizer(extractor, verifyChecksums),
	}
}

// ProcessObject harvests one archival object directory against its
// descriptive record and writes <identifier>_metadata.xml into the
// directory. A directory with no recognizable assets still produces a
// record; it simply carries no instantiations.
func (s *Service) ProcessObject(ctx context.Context, dir string, rec records.Record) (models.ObjectResult, error) {
	objectID, err := rec.Require(records.FieldObjectIdentifier)
	if err != nil {
		return models.ObjectResult{}, err
	}
	result := models.ObjectResult{ObjectIdentifier: objectID}

	units, err := packages.Analyze(dir)
	if err != nil {
		return result, err
	}
	slog.Debug("Analyzed object directory", "object_id", objectID, "units", len(units))

	record, err := dcxml.NewRecord(rec)
	if err != nil {
		return result, fmt.Errorf("failed to build record for %s: %w", objectID, err)
	}

	stats, err := s.synthesizer.Populate(ctx, record, units, objectID)
	result.Instantiations = stats.Instantiations
	result.Pages = stats.Pages
	result.Warnings = stats.Warnings
	if err != nil {
		return result, fmt.Errorf("failed to synthesize instantiations for %s: %w", objectID, err)
	}

	record.Prune()

	outputPath := filepath.Join(dir, objectID+"_metadata.xml")
	if err := record.WriteFile(outputPath); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	result.OutputPath = outputPath

	slog.Info("Wrote metadata record",
		"object_id", objectID,
		"path", outputPath,
		"instantiations", stats.Instantiations,
		"pages", stats.Pages)

	return result, nil
}
