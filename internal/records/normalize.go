package records

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Normalize repairs the two artifacts descriptive exports are known to carry:
// field values encoded as Mac OS Roman instead of UTF-8, and spreadsheet
// quoting of the form ="value". The record is mutated in place and returned.
func Normalize(rec Record) Record {
	for field, value := range rec {
		if !utf8.ValidString(value) {
			decoded, err := charmap.Macintosh.NewDecoder().String(value)
			if err == nil {
				slog.Warn("Non UTF-8 characters detected, converting from Mac OS Roman", "field", field)
				value = decoded
				rec[field] = value
			}
		}

		if strings.Contains(value, "=") && strings.HasPrefix(value, `="`) {
			rec[field] = stripQuoting(value)
		}
	}

	return rec
}

// stripQuoting drops the leading =" and the trailing quote of a
// spreadsheet-quoted value.
func stripQuoting(value string) string {
	value = value[2:]
	if len(value) > 0 {
		value = value[:len(value)-1]
	}
	return value
}
