package manifest

// SummaryManifest represents the structure of the build summary JSON file.
// It gives a lightweight overview of every page in a build, its status,
// and how many pages each module contributed.
type SummaryManifest struct {
	GeneratedAt string        `json:"generated_at"`
	BuildID     int64         `json:"build_id,omitempty"`
	TotalPages  int           `json:"total_pages"`
	Successful  int           `json:"successful"`
	Failed      int           `json:"failed"`
	Hooks       []string      `json:"hooks,omitempty"`
	Modules     []string      `json:"modules,omitempty"` // "Name:count", most pages first
	Results     []PageSummary `json:"results"`
}

// PageSummary represents summary information for a single page.
type PageSummary struct {
	URL             string   `json:"url"`
	SourcePath      string   `json:"source_path"`
	OutputPath      string   `json:"output_path,omitempty"`
	Status          string   `json:"status"` // "success" or "error"
	ErrorType       string   `json:"error_type,omitempty"`
	ErrorMessage    string   `json:"error_message,omitempty"`
	SizeBytes       int64    `json:"size_bytes,omitempty"`
	ModuleName      string   `json:"module_name,omitempty"`
	BreadcrumbPaths []string `json:"breadcrumb_paths,omitempty"`
}
