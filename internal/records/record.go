package records

import (
	"fmt"
	"log/slog"
)

// FieldObjectIdentifier is the descriptive field that keys records to
// archival object directories.
const FieldObjectIdentifier = "Object Identifier"

// Record is one archival object's descriptive metadata, keyed by the column
// names of the source export. A field is present iff its column exists in
// the source header; present-but-empty values stay in the map as "".
type Record map[string]string

// Require returns the named field's value. A column missing from the source
// entirely is an error, and required descriptive columns are fatal to a
// harvest run; an empty value is not.
func (r Record) Require(field string) (string, error) {
	value, ok := r[field]
	if !ok {
		return "", fmt.Errorf("descriptive record is missing required field %q", field)
	}
	return value, nil
}

// TotalExtent resolves the total-extent value through the fallback chain of
// column names the export templates have used over time. Each fallback fires
// only when the prior column is absent from the source, never when it is
// merely empty.
func (r Record) TotalExtent() (string, error) {
	if value, ok := r["Extent (total number of pages)"]; ok {
		return value, nil
	}
	slog.Warn(`"Extent (total number of pages)" column is missing, using "Total number of pages" instead`)

	if value, ok := r["Total number of pages"]; ok {
		return value, nil
	}
	slog.Warn(`"Total number of pages" column is missing, using "Total Number of Reels or Tapes" instead`)

	if value, ok := r["Total Number of Reels or Tapes"]; ok {
		return value, nil
	}
	return "", fmt.Errorf("descriptive record has none of the total extent columns")
}
