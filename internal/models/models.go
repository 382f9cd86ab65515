package models

// ObjectResult records the outcome of harvesting one archival object
type ObjectResult struct {
	ObjectIdentifier string   `json:"object_identifier" yaml:"objectidentifier"`
	OutputPath       string   `json:"output_path,omitempty" yaml:"outputpath,omitempty"`
	Instantiations   int      `json:"instantiations" yaml:"instantiations"`
	Pages            int      `json:"pages" yaml:"pages"`
	Warnings         []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error            string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunSummary aggregates one harvest run across all scanned directories
type RunSummary struct {
	DirectoriesScanned int `json:"directories_scanned" yaml:"directoriesscanned"`
	ObjectsMatched     int `json:"objects_matched" yaml:"objectsmatched"`
	ObjectsSkipped     int `json:"objects_skipped" yaml:"objectsskipped"`
	FilesWritten       int `json:"files_written" yaml:"fileswritten"`
	Instantiations     int `json:"instantiations" yaml:"instantiations"`
	Pages              int `json:"pages" yaml:"pages"`
	Warnings           int `json:"warnings" yaml:"warnings"`
}
