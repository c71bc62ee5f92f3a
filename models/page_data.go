package models

// Keys used when PageData is exposed to templates and serialized output.
const (
	KeyBreadcrumbPaths = "breadcrumb_paths"
	KeyBreadcrumbTitle = "breadcrumb_title"
	KeyModuleName      = "module_name"
	KeyCommandSection  = "command_section"
)

// PageData holds navigation fields derived for a page before rendering.
// A zero value means nothing was derived.
type PageData struct {
	BreadcrumbPaths []string `json:"breadcrumb_paths,omitempty" yaml:"breadcrumb_paths,omitempty"`
	BreadcrumbTitle string   `json:"breadcrumb_title,omitempty" yaml:"breadcrumb_title,omitempty"`
	ModuleName      string   `json:"module_name,omitempty" yaml:"module_name,omitempty"`
	CommandSection  bool     `json:"command_section,omitempty" yaml:"command_section,omitempty"`
}

// IsZero reports whether no field has been set.
func (d PageData) IsZero() bool {
	return d.BreadcrumbPaths == nil &&
		d.BreadcrumbTitle == "" &&
		d.ModuleName == "" &&
		!d.CommandSection
}

// Map returns the set fields keyed by their template names.
// Unset fields are absent rather than zero-valued.
func (d PageData) Map() map[string]any {
	m := make(map[string]any, 4)
	if d.BreadcrumbPaths != nil {
		paths := make([]string, len(d.BreadcrumbPaths))
		copy(paths, d.BreadcrumbPaths)
		m[KeyBreadcrumbPaths] = paths
	}
	if d.BreadcrumbTitle != "" {
		m[KeyBreadcrumbTitle] = d.BreadcrumbTitle
	}
	if d.ModuleName != "" {
		m[KeyModuleName] = d.ModuleName
	}
	if d.CommandSection {
		m[KeyCommandSection] = true
	}
	return m
}
