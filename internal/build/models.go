package build

import (
	"github.com/dtnitsch/modsite/models"
)

// Error types recorded for failed pages.
const (
	ErrorTypeRender = "render_error"
	ErrorTypeSave   = "save_error"
)

// Job is a single page handed to a build worker.
type Job struct {
	Page *models.Page
}

// Result holds the outcome of building one page.
type Result struct {
	Page          *models.Page
	ContentHash   string
	Unchanged     bool // output already matched the manifest hash, write skipped
	Error         error
	ErrorType     string
	FileSizeBytes int64
}

// Report summarizes a finished build.
type Report struct {
	BuildID     int64
	Results     []Result
	Successful  int
	Failed      int
	Unchanged   int
	SummaryPath string
}

// PageOutput is the crumbs command output for one URL.
type PageOutput struct {
	URL  string         `json:"url" yaml:"url"`
	Data map[string]any `json:"data" yaml:"data"`
}
