// Package packages analyzes archival object directories: it classifies the
// digitized asset files by generation, groups them into per-page units, and
// reads the sidecar checksum manifests that accompany every asset.
package packages

import "strings"

// Generation identifies the role of one asset file within an archival
// object.
type Generation int

const (
	Unknown Generation = iota
	Preservation
	PreservationVariant
	Access
	AccessVariant
	Print
)

var generationNames = map[Generation]string{
	Preservation:        "Preservation",
	PreservationVariant: "Preservation_01",
	Access:              "Access",
	AccessVariant:       "Access_01",
	Print:               "Print",
}

func (g Generation) String() string {
	if name, ok := generationNames[g]; ok {
		return name
	}
	return "Unknown"
}

// Base maps a variant generation to the base generation it stands in for.
// Output records label variants with the base name.
func (g Generation) Base() Generation {
	switch g {
	case PreservationVariant:
		return Preservation
	case AccessVariant:
		return Access
	default:
		return g
	}
}

// classifications maps filename suffixes to generations. Variant suffixes
// come before the base suffixes they extend, so "_01_prsv.tif" wins over
// "prsv.tif".
var classifications = []struct {
	suffix     string
	generation Generation
}{
	{"_01_prsv.tif", PreservationVariant},
	{"prsv.tif", Preservation},
	{"_01_access.jpg", AccessVariant},
	{"access.jpg", Access},
	{".pdf", Print},
}

// Classify returns the generation of a filename, or Unknown for names that
// match no suffix (checksum manifests, stray files).
func Classify(name string) Generation {
	for _, c := range classifications {
		if strings.HasSuffix(name, c.suffix) {
			return c.generation
		}
	}
	return Unknown
}
