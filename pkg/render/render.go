// Package render applies the site layout to converted pages.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/modsite/models"
)

//go:embed default.html
var defaultLayout string

// View is the data passed to the layout template.
type View struct {
	Site    *models.SiteConfig
	Page    *models.Page
	Content template.HTML
	Data    map[string]any
}

// DefaultLayoutName selects the site layout from front matter.
const DefaultLayoutName = "default"

// Renderer executes the site layout, or a named layout chosen by the page.
type Renderer struct {
	tmpl  *template.Template
	named map[string]*template.Template
}

// New parses the layout at layoutPath, or the built-in layout when empty.
// Every *.html file in layoutsDir becomes a named layout keyed by its base
// name without extension. A missing layoutsDir is not an error.
func New(layoutPath, layoutsDir string) (*Renderer, error) {
	tmpl, err := parseLayout(layoutPath)
	if err != nil {
		return nil, err
	}
	r := &Renderer{tmpl: tmpl, named: make(map[string]*template.Template)}

	if layoutsDir == "" {
		return r, nil
	}
	files, err := filepath.Glob(filepath.Join(layoutsDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	for _, file := range files {
		t, err := parseLayout(file)
		if err != nil {
			return nil, err
		}
		r.named[strings.TrimSuffix(filepath.Base(file), ".html")] = t
	}
	return r, nil
}

func parseLayout(layoutPath string) (*template.Template, error) {
	tmpl := template.New("layout").Funcs(FuncMap())

	var err error
	if layoutPath == "" {
		tmpl, err = tmpl.Parse(defaultLayout)
	} else {
		tmpl, err = tmpl.ParseFiles(layoutPath)
		if err == nil {
			tmpl = tmpl.Lookup(filepath.Base(layoutPath))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if tmpl == nil {
		return nil, fmt.Errorf("layout %s not found", layoutPath)
	}
	return tmpl, nil
}

// Layouts returns the named layout keys, sorted.
func (r *Renderer) Layouts() []string {
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Renderer) layoutFor(page *models.Page) (*template.Template, error) {
	if page.Layout == "" {
		return r.tmpl, nil
	}
	if t, ok := r.named[page.Layout]; ok {
		return t, nil
	}
	if page.Layout == DefaultLayoutName {
		return r.tmpl, nil
	}
	return nil, fmt.Errorf("layout %q not found for %s", page.Layout, page.URL)
}

// FuncMap returns the helpers available to layouts.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"crumbLabel": CrumbLabel,
	}
}

// CrumbLabel returns the display label for a breadcrumb path.
func CrumbLabel(p string) string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return "Home"
	}
	return path.Base(trimmed)
}

// Render writes the page through the layout.
func (r *Renderer) Render(w io.Writer, site *models.SiteConfig, page *models.Page) error {
	view := View{
		Site: site,
		Page: page,
		// Content is produced by the converter from trusted site sources.
		Content: template.HTML(page.Content),
		Data:    page.Data.Map(),
	}
	tmpl, err := r.layoutFor(page)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render %s: %w", page.URL, err)
	}
	return nil
}
