package packages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Unit is the set of generations that make up one physical page of an
// archival object, or the whole-object print derivative. Preservation units
// always carry paths for the access derivative and both manifests, whether
// or not those files exist on disk; only the variant paths are conditional
// on the variant master being present.
type Unit struct {
	Preservation        string
	PreservationVariant string
	Access              string
	AccessVariant       string
	Print               string

	manifests map[Generation]string
}

// synthesisOrder fixes the order generations are emitted in: variants first,
// then their base, preservation before access, print last.
var synthesisOrder = [...]Generation{
	PreservationVariant,
	Preservation,
	AccessVariant,
	Access,
	Print,
}

// Generations lists the unit's populated generations in synthesis order.
func (u Unit) Generations() []Generation {
	var gens []Generation
	for _, gen := range synthesisOrder {
		if u.Path(gen) != "" {
			gens = append(gens, gen)
		}
	}
	return gens
}

// Path returns the asset path for a generation, or "" when the unit does not
// carry it.
func (u Unit) Path(gen Generation) string {
	switch gen {
	case Preservation:
		return u.Preservation
	case PreservationVariant:
		return u.PreservationVariant
	case Access:
		return u.Access
	case AccessVariant:
		return u.AccessVariant
	case Print:
		return u.Print
	default:
		return ""
	}
}

// Manifest returns the checksum manifest path for a generation.
func (u Unit) Manifest(gen Generation) string {
	return u.manifests[gen]
}

// IsPrint reports whether the unit is a whole-object print derivative rather
// than a page.
func (u Unit) IsPrint() bool {
	return u.Print != ""
}

// Analyze scans an archival object directory and groups its asset files
// into units. Each preservation master anchors a page unit; its access
// derivative and manifests are derived from the master's filename by suffix
// substitution, and the variant pair joins the unit only when the variant
// master is present on disk. Pairing is a single suffix substitution on the
// base filename, so a package where several pages each carry base and
// variant masters is not disambiguated beyond that. Files whose names match
// no generation are ignored, as are dot-prefixed entries. A directory with
// no assets yields an empty slice and no error.
func Analyze(dir string) ([]Unit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read object directory: %w", err)
	}

	units := []Unit{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name[0] == '.' {
			continue
		}

		switch Classify(name) {
		case Preservation:
			units = append(units, preservationUnit(dir, name))
		case Print:
			units = append(units, printUnit(dir, name))
		}
	}

	return units, nil
}

// preservationUnit builds the page unit anchored on one preservation master.
func preservationUnit(dir, name string) Unit {
	unit := Unit{
		Preservation: filepath.Join(dir, name),
		Access:       filepath.Join(dir, replaceSuffix(name, "prsv.tif", "access.jpg")),
		manifests:    make(map[Generation]string),
	}
	unit.manifests[Preservation] = unit.Preservation + ".md5"
	unit.manifests[Access] = unit.Access + ".md5"

	variant := filepath.Join(dir, replaceSuffix(name, "prsv.tif", "01_prsv.tif"))
	if _, err := os.Stat(variant); err == nil {
		unit.PreservationVariant = variant
		unit.manifests[PreservationVariant] = variant + ".md5"
		unit.AccessVariant = filepath.Join(dir, replaceSuffix(name, "prsv.tif", "01_access.jpg"))
		unit.manifests[AccessVariant] = unit.AccessVariant + ".md5"
	}

	return unit
}

// printUnit builds the whole-object unit for one print derivative.
func printUnit(dir, name string) Unit {
	unit := Unit{
		Print:     filepath.Join(dir, name),
		manifests: make(map[Generation]string),
	}
	unit.manifests[Print] = unit.Print + ".md5"
	return unit
}

func replaceSuffix(name, old, new string) string {
	return strings.TrimSuffix(name, old) + new
}
