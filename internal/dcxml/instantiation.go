package dcxml

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/lehigh-university-libraries/harvester/internal/exiftool"
	"github.com/lehigh-university-libraries/harvester/internal/packages"
)

// Extractor supplies per-file technical metadata. *exiftool.Tool satisfies
// it.
type Extractor interface {
	Extract(ctx context.Context, path string) (exiftool.Metadata, error)
}

// Synthesizer turns package units into instantiation blocks on a record.
type Synthesizer struct {
	extractor       Extractor
	verifyChecksums bool
}

// NewSynthesizer creates a synthesizer. With verifyChecksums set, every
// manifest token is compared against a fresh digest of the asset file and
// disagreements are collected as warnings.
func NewSynthesizer(extractor Extractor, verifyChecksums bool) *Synthesizer {
	return &Synthesizer{
		extractor:       extractor,
		verifyChecksums: verifyChecksums,
	}
}

// Stats reports what Populate added to a record.
type Stats struct {
	Instantiations int
	Pages          int
	Warnings       []string
}

// Populate appends one instantiation per generation of each unit to the
// record. Generations follow the fixed synthesis order within a unit, so a
// preservation master always precedes the access derivative paired with it.
// The page counter advances once per page unit; print units are related to
// the whole object and never consume a page number.
func (s *Synthesizer) Populate(ctx context.Context, rec *Record, units []packages.Unit, objectID string) (Stats, error) {
	var stats Stats

	page := 1
	for _, unit := range units {
		for _, gen := range unit.Generations() {
			if err := s.addInstantiation(ctx, rec.assetPart, unit, gen, objectID, page, &stats); err != nil {
				return stats, err
			}
			stats.Instantiations++
		}
		if !unit.IsPrint() {
			page++
			stats.Pages++
		}
	}

	return stats, nil
}

// addInstantiation appends the instantiation group for one asset file. The
// group and unit element names keep the partner schema's historical
// spellings.
func (s *Synthesizer) addInstantiation(ctx context.Context, assetPart *etree.Element, unit packages.Unit, gen packages.Generation, objectID string, page int, stats *Stats) error {
	path := unit.Path(gen)
	base := filepath.Base(path)

	slog.Debug("Creating instantiation", "file", base, "generation", gen.String(), "page", page)

	meta, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to extract technical metadata from %s: %w", base, err)
	}

	values, err := s.technicalValues(unit, gen, meta, objectID, stats)
	if err != nil {
		return fmt.Errorf("%s: %w", base, err)
	}

	group := assetPart.CreateElement("instantations")
	if gen == packages.Print {
		group.CreateAttr("relationship", "object")
	} else {
		group.CreateAttr("relationship", fmt.Sprintf("Page %d", page))
	}

	inst := group.CreateElement("instantation")
	inst.CreateAttr("generation", gen.Base().String())

	technical := inst.CreateElement("technical")
	for _, tag := range technicalElements {
		el := technical.CreateElement(tag)
		if tag == "size" {
			el.CreateAttr("unit", "megabytes")
		}
		if value, ok := values[tag]; ok {
			el.SetText(value)
		}
	}

	return nil
}

// technicalValues computes the populated subset of the technical elements
// for one asset file. Identity, date, format, size, and checksum fields are
// always required, the image fields additionally for every non-PDF
// generation. The rest are filled only when the tool reported them and are
// otherwise left empty for the pruning pass.
func (s *Synthesizer) technicalValues(unit packages.Unit, gen packages.Generation, meta exiftool.Metadata, objectID string, stats *Stats) (map[string]string, error) {
	path := unit.Path(gen)
	values := make(map[string]string, len(technicalElements))

	values["digitalFileIdentifier"] = filepath.Base(path)

	date, ok := meta.FileModifyDate()
	if !ok {
		return nil, fmt.Errorf("exiftool reported no FileModifyDate")
	}
	values["creationDate"] = formatCreationDate(date)

	ext, ok := meta.FileTypeExtension()
	if !ok {
		return nil, fmt.Errorf("exiftool reported no FileTypeExtension")
	}
	values["fileExtension"] = ext

	mime, ok := meta.MIMEType()
	if !ok {
		return nil, fmt.Errorf("exiftool reported no MIMEType")
	}
	values["standardAndFileWrapper"] = mime

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat asset: %w", err)
	}
	values["size"] = formatSizeMegabytes(info.Size())

	if !strings.EqualFold(ext, "pdf") {
		if err := rasterValues(values, meta); err != nil {
			return nil, err
		}
	}

	checksum, err := packages.ReadChecksum(unit.Manifest(gen))
	if err != nil {
		return nil, fmt.Errorf("failed to read checksum: %w", err)
	}
	values["md5"] = checksum
	if s.verifyChecksums {
		s.verifyChecksum(path, checksum, stats)
	}

	switch gen {
	case packages.Preservation, packages.PreservationVariant:
		values["derivedFrom"] = objectID
	case packages.Access, packages.AccessVariant:
		values["derivedFrom"] = filepath.Base(unit.Preservation)
	case packages.Print:
		values["derivedFrom"] = "Bound from multiple tiff files"
	}

	optional := []struct {
		tag string
		key string
	}{
		{"samplesPerPixel", "ColorComponents"},
		{"compression", "Compression"},
		{"creatingApplicationAndVersion", "CreatorTool"},
		{"digitizerManufacturer", "Make"},
		{"digitizerModel", "Model"},
	}
	for _, opt := range optional {
		if value, ok := meta.String(opt.key); ok {
			values[opt.tag] = value
		}
	}

	return values, nil
}

// rasterValues fills the image fields required for every non-PDF
// generation.
func rasterValues(values map[string]string, meta exiftool.Metadata) error {
	bits, ok := meta.BitsPerSample()
	if !ok {
		return fmt.Errorf("exiftool reported no BitsPerSample")
	}
	depth, err := deriveBitDepth(bits, meta)
	if err != nil {
		return err
	}
	values["bitDepth"] = depth

	required := []struct {
		tag string
		key string
	}{
		{"imageWidth", "ImageWidth"},
		{"imageLength", "ImageHeight"},
		{"xResolution", "XResolution"},
		{"yResolution", "YResolution"},
	}
	for _, req := range required {
		value, ok := meta.String(req.key)
		if !ok {
			return fmt.Errorf("exiftool reported no %s", req.key)
		}
		values[req.tag] = value
	}

	return nil
}

// verifyChecksum recomputes the asset's digest and records a warning when
// it disagrees with the manifest token. Fixity problems never abort a run.
func (s *Synthesizer) verifyChecksum(path, manifestChecksum string, stats *Stats) {
	base := filepath.Base(path)

	actual, err := packages.FileMD5(path)
	if err != nil {
		slog.Warn("Could not verify checksum", "file", base, "err", err)
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("could not verify checksum of %s: %v", base, err))
		return
	}
	if actual != manifestChecksum {
		slog.Warn("Checksum mismatch", "file", base, "manifest", manifestChecksum, "computed", actual)
		stats.Warnings = append(stats.Warnings, fmt.Sprintf("checksum mismatch for %s: manifest has %s, file is %s", base, manifestChecksum, actual))
	}
}

// formatCreationDate rewrites exiftool's FileModifyDate into the output
// form: the two date colons become dashes and the timezone is cut, so
// "2019:03:12 10:36:13+00:00" becomes "2019-03-12 10:36:13".
func formatCreationDate(date string) string {
	date = strings.Replace(date, ":", "-", 2)
	if len(date) > 19 {
		date = date[:19]
	}
	return date
}

// formatSizeMegabytes renders a byte count in megabytes rounded to two
// decimal places with trailing zeros dropped, "2.5" rather than "2.50".
func formatSizeMegabytes(bytes int64) string {
	megabytes := float64(bytes) / 1024 / 1024
	return strconv.FormatFloat(math.Round(megabytes*100)/100, 'f', -1, 64)
}

// deriveBitDepth computes bits per pixel from exiftool's BitsPerSample.
// Space-separated per-channel values are summed ("8 8 8" is 24); a single
// value is multiplied by ColorComponents (8 across 3 components is 24).
func deriveBitDepth(bitsPerSample string, meta exiftool.Metadata) (string, error) {
	parts := strings.Fields(bitsPerSample)
	if len(parts) == 0 {
		return "", fmt.Errorf("exiftool reported an empty BitsPerSample")
	}

	if len(parts) > 1 {
		sum := 0
		for _, part := range parts {
			bits, err := strconv.Atoi(part)
			if err != nil {
				return "", fmt.Errorf("unparseable BitsPerSample %q", bitsPerSample)
			}
			sum += bits
		}
		return strconv.Itoa(sum), nil
	}

	bits, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("unparseable BitsPerSample %q", bitsPerSample)
	}
	components, ok := meta.ColorComponents()
	if !ok {
		return "", fmt.Errorf("exiftool reported BitsPerSample without ColorComponents")
	}
	return strconv.Itoa(bits * components), nil
}
