// Package breadcrumb derives breadcrumb navigation fields for module
// documentation pages.
package breadcrumb

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/modsite/models"
)

const (
	modulesMarker           = "/modules/"
	powershellModulesMarker = "/powershellmodules/"

	// PowerShellModulesTitle is the breadcrumb title for /powershellmodules/ pages.
	PowerShellModulesTitle = "PowerShell Modules"

	// HookName identifies the annotator in a hook pipeline.
	HookName = "breadcrumbs"
)

// InScope reports whether a page URL is eligible for breadcrumb annotation.
func InScope(url string) bool {
	return strings.Contains(url, modulesMarker) || strings.Contains(url, powershellModulesMarker)
}

// Segments splits a URL path into its non-empty segments, dropping index.html.
func Segments(url string) []string {
	parts := strings.Split(url, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "index.html" {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}

// Paths builds the ordered ancestor prefixes for a URL, always starting at "/".
// The last segment is left out unless the URL itself ends with a slash.
func Paths(url string, segments []string) []string {
	paths := make([]string, 1, len(segments)+1)
	paths[0] = "/"

	dirStyle := strings.HasSuffix(url, "/")
	current := ""
	for i, seg := range segments {
		if i == len(segments)-1 && !dirStyle {
			continue
		}
		current += "/" + seg
		paths = append(paths, current)
	}
	return paths
}

// Annotate populates breadcrumb fields on data for in-scope URLs.
// Out-of-scope URLs leave data untouched. Annotate never fails.
func Annotate(url string, data *models.PageData) {
	if data == nil || !InScope(url) {
		return
	}

	segments := Segments(url)
	data.BreadcrumbPaths = Paths(url, segments)

	switch {
	case strings.Contains(url, powershellModulesMarker):
		data.BreadcrumbTitle = PowerShellModulesTitle
	case strings.Contains(url, modulesMarker) && len(segments) >= 2:
		data.ModuleName = capitalize(segments[1])
		if len(segments) >= 3 && segments[2] == "commands" {
			data.CommandSection = true
		}
	}
}

// capitalize upper-cases the first rune only; the rest is left as written.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Annotator runs Annotate as a pre-render hook.
type Annotator struct{}

// NewAnnotator returns a breadcrumb pre-render hook.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

func (a *Annotator) Name() string { return HookName }

// PreRender annotates the page's own data in place.
func (a *Annotator) PreRender(page *models.Page) {
	if page == nil {
		return
	}
	Annotate(page.URL, &page.Data)
}
