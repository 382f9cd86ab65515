package exiftool

import (
	"encoding/json"
	"testing"
)

func TestNewBinary(t *testing.T) {
	t.Setenv("EXIFTOOL", "")
	if got := New().Binary(); got != "exiftool" {
		t.Errorf("Expected exiftool, got %s", got)
	}

	t.Setenv("EXIFTOOL", "/opt/exiftool/exiftool")
	if got := New().Binary(); got != "/opt/exiftool/exiftool" {
		t.Errorf("Expected /opt/exiftool/exiftool, got %s", got)
	}
}

func TestMetadataString(t *testing.T) {
	raw := `[{
		"FileTypeExtension": "tif",
		"ImageWidth": 5120,
		"XResolution": 300,
		"FocalLength": 72.5,
		"BitsPerSample": "8 8 8"
	}]`
	var results []Metadata
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	meta := results[0]

	tests := []struct {
		key  string
		want string
	}{
		{"FileTypeExtension", "tif"},
		{"ImageWidth", "5120"},
		{"XResolution", "300"},
		{"FocalLength", "72.5"},
		{"BitsPerSample", "8 8 8"},
	}
	for _, tt := range tests {
		got, ok := meta.String(tt.key)
		if !ok {
			t.Fatalf("Expected %s to be present", tt.key)
		}
		if got != tt.want {
			t.Errorf("Expected %s for %s, got %s", tt.want, tt.key, got)
		}
	}

	if _, ok := meta.String("Compression"); ok {
		t.Error("Expected absent tag to report not ok")
	}
}

func TestMetadataInt(t *testing.T) {
	meta := Metadata{
		"ColorComponents": float64(3),
		"BitsPerSample":   "8 8 8",
	}

	n, ok := meta.ColorComponents()
	if !ok {
		t.Fatal("Expected ColorComponents to be present")
	}
	if n != 3 {
		t.Errorf("Expected 3, got %d", n)
	}

	if _, ok := meta.Int("BitsPerSample"); ok {
		t.Error("Expected multi-valued tag not to parse as int")
	}
	if _, ok := meta.Int("ImageWidth"); ok {
		t.Error("Expected absent tag to report not ok")
	}
}
