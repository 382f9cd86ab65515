package records

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Loader reads descriptive metadata exports into records.
type Loader struct {
	path string
}

// NewLoader creates a loader for the descriptive export at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads all records from the export. The format is detected from the
// file extension.
func (l *Loader) Load() ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".csv":
		return l.loadCSV()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .parquet)", ext)
	}
}

// loadCSV reads a CSV export with a header row. Every header column is
// present on every record; rows shorter than the header are padded with
// empty values.
func (l *Loader) loadCSV() ([]Record, error) {
	slog.Debug("Opening CSV file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("descriptive export %s has no header row", l.path)
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}

	slog.Debug("Finished reading CSV file", "total_records", len(records))

	return records, nil
}

// descriptiveRow mirrors the full column set of the descriptive export
// templates so parquet files can be read with the generic reader. Every
// column is optional; the file's own schema decides which ones a record
// carries.
type descriptiveRow struct {
	ObjectIdentifier    string `parquet:"Object Identifier,optional"`
	CallNumber          string `parquet:"Call Number,optional"`
	ProjectIdentifier   string `parquet:"Project Identifier,optional"`
	AssetType           string `parquet:"Asset Type,optional"`
	InternetArchiveURL  string `parquet:"Internet Archive URL,optional"`
	Institution         string `parquet:"Institution,optional"`
	Type                string `parquet:"Type,optional"`
	Generation          string `parquet:"Generation,optional"`
	Format              string `parquet:"Format,optional"`
	ExtentTotalPages    string `parquet:"Extent (total number of pages),optional"`
	TotalPages          string `parquet:"Total number of pages,optional"`
	TotalReelsOrTapes   string `parquet:"Total Number of Reels or Tapes,optional"`
	ExtentDimensions    string `parquet:"Extent (dimensions),optional"`
	MainOrSuppliedTitle string `parquet:"Main or Supplied Title,optional"`
	AdditionalTitle     string `parquet:"Additional Title,optional"`
	Creator             string `parquet:"Creator,optional"`
	DateCreated         string `parquet:"Date Created,optional"`
	DatePublished       string `parquet:"Date Published,optional"`
	CopyrightStatement  string `parquet:"Copyright Statement,optional"`
	CountryOfCreation   string `parquet:"Country of Creation,optional"`
	Language            string `parquet:"Language,optional"`
	CDNPIdentifier      string `parquet:"CDNP Identifier,optional"`
	SerialVolume        string `parquet:"Serial Volume,optional"`
	SerialIssue         string `parquet:"Serial Issue,optional"`
	PublicationLocation string `parquet:"Publication Location,optional"`
	Description         string `parquet:"Description or Content Summary,optional"`
	QualityControlNotes string `parquet:"Quality Control Notes,optional"`
}

// knownColumns binds each descriptive column name to its row accessor.
var knownColumns = []struct {
	name  string
	value func(*descriptiveRow) string
}{
	{"Object Identifier", func(r *descriptiveRow) string { return r.ObjectIdentifier }},
	{"Call Number", func(r *descriptiveRow) string { return r.CallNumber }},
	{"Project Identifier", func(r *descriptiveRow) string { return r.ProjectIdentifier }},
	{"Asset Type", func(r *descriptiveRow) string { return r.AssetType }},
	{"Internet Archive URL", func(r *descriptiveRow) string { return r.InternetArchiveURL }},
	{"Institution", func(r *descriptiveRow) string { return r.Institution }},
	{"Type", func(r *descriptiveRow) string { return r.Type }},
	{"Generation", func(r *descriptiveRow) string { return r.Generation }},
	{"Format", func(r *descriptiveRow) string { return r.Format }},
	{"Extent (total number of pages)", func(r *descriptiveRow) string { return r.ExtentTotalPages }},
	{"Total number of pages", func(r *descriptiveRow) string { return r.TotalPages }},
	{"Total Number of Reels or Tapes", func(r *descriptiveRow) string { return r.TotalReelsOrTapes }},
	{"Extent (dimensions)", func(r *descriptiveRow) string { return r.ExtentDimensions }},
	{"Main or Supplied Title", func(r *descriptiveRow) string { return r.MainOrSuppliedTitle }},
	{"Additional Title", func(r *descriptiveRow) string { return r.AdditionalTitle }},
	{"Creator", func(r *descriptiveRow) string { return r.Creator }},
	{"Date Created", func(r *descriptiveRow) string { return r.DateCreated }},
	{"Date Published", func(r *descriptiveRow) string { return r.DatePublished }},
	{"Copyright Statement", func(r *descriptiveRow) string { return r.CopyrightStatement }},
	{"Country of Creation", func(r *descriptiveRow) string { return r.CountryOfCreation }},
	{"Language", func(r *descriptiveRow) string { return r.Language }},
	{"CDNP Identifier", func(r *descriptiveRow) string { return r.CDNPIdentifier }},
	{"Serial Volume", func(r *descriptiveRow) string { return r.SerialVolume }},
	{"Serial Issue", func(r *descriptiveRow) string { return r.SerialIssue }},
	{"Publication Location", func(r *descriptiveRow) string { return r.PublicationLocation }},
	{"Description or Content Summary", func(r *descriptiveRow) string { return r.Description }},
	{"Quality Control Notes", func(r *descriptiveRow) string { return r.QualityControlNotes }},
}

// loadParquet reads a parquet export with the generic reader. Only columns
// actually present in the file's schema end up on the records, so column
// presence drives the extent fallback chain exactly as a CSV header does.
func (l *Loader) loadParquet() ([]Record, error) {
	slog.Debug("Opening parquet file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	present := make(map[string]bool)
	for _, path := range pf.Schema().Columns() {
		if len(path) == 1 {
			present[path[0]] = true
		}
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "columns", len(present))

	reader := parquet.NewGenericReader[descriptiveRow](pf)
	defer reader.Close()

	var records []Record
	rows := make([]descriptiveRow, 100)

	for {
		n, err := reader.Read(rows)
		for i := range rows[:n] {
			record := make(Record, len(knownColumns))
			for _, column := range knownColumns {
				if present[column.name] {
					record[column.name] = column.value(&rows[i])
				}
			}
			records = append(records, record)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading parquet file", "total_records", len(records))

	return records, nil
}
