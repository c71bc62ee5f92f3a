package models

// Page represents a single content page moving through a site build.
type Page struct {
	URL        string         `json:"url" yaml:"url"`
	SourcePath string         `json:"source_path" yaml:"source_path"`
	OutputPath string         `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	Title      string         `json:"title,omitempty" yaml:"title,omitempty"`
	Layout     string         `json:"layout,omitempty" yaml:"layout,omitempty"`
	Lang       string         `json:"lang,omitempty" yaml:"lang,omitempty"`
	Excerpt    string         `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Params     map[string]any `json:"params,omitempty" yaml:"params,omitempty"`

	Format  SourceFormat `json:"-" yaml:"-"`
	Body    []byte       `json:"-" yaml:"-"` // raw source after front matter
	Content string       `json:"-" yaml:"-"` // converted HTML

	Data PageData `json:"data" yaml:"data"`
}

// SourceFormat identifies how a page body is written on disk.
type SourceFormat int

const (
	FormatMarkdown SourceFormat = iota
	FormatHTML
)

func (f SourceFormat) String() string {
	switch f {
	case FormatHTML:
		return "html"
	default:
		return "markdown"
	}
}
