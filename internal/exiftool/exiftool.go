// Package exiftool invokes the exiftool command line utility and exposes the
// per-file technical metadata it reports.
package exiftool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Tool runs exiftool against individual asset files.
type Tool struct {
	binary string
}

// New creates a tool that runs the binary named by the EXIFTOOL environment
// variable, or "exiftool" from PATH.
func New() *Tool {
	binary := os.Getenv("EXIFTOOL")
	if binary == "" {
		binary = "exiftool"
	}
	return &Tool{binary: binary}
}

// Binary returns the exiftool binary the tool invokes.
func (t *Tool) Binary() string {
	return t.binary
}

// Extract runs exiftool on one file and returns its reported metadata.
func (t *Tool) Extract(ctx context.Context, path string) (Metadata, error) {
	cmd := exec.CommandContext(ctx, t.binary, "-json", path)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("exiftool failed: %w: %s", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("exiftool failed: %w", err)
	}

	// exiftool -json emits one object per input file.
	var results []Metadata
	if err := json.Unmarshal(output, &results); err != nil {
		return nil, fmt.Errorf("failed to parse exiftool output: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("exiftool reported nothing for %s", path)
	}

	return results[0], nil
}

// Metadata is the tag set exiftool reported for one file. Numeric tags
// arrive as JSON numbers, multi-valued tags like BitsPerSample as
// space-separated strings.
type Metadata map[string]any

// String returns the tag rendered as a string. Integral floats drop the
// decimal point, so a width of 5120.0 comes back as "5120".
func (m Metadata) String(key string) (string, bool) {
	value, ok := m[key]
	if !ok {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// Int returns the tag as an integer when it parses as one.
func (m Metadata) Int(key string) (int, bool) {
	s, ok := m.String(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m Metadata) MIMEType() (string, bool)          { return m.String("MIMEType") }
func (m Metadata) FileTypeExtension() (string, bool) { return m.String("FileTypeExtension") }
func (m Metadata) FileModifyDate() (string, bool)    { return m.String("FileModifyDate") }
func (m Metadata) BitsPerSample() (string, bool)     { return m.String("BitsPerSample") }
func (m Metadata) ColorComponents() (int, bool)      { return m.Int("ColorComponents") }
