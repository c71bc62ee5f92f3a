package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/modsite/models"
)

func TestCrumbLabel(t *testing.T) {
	tests := map[string]string{
		"/":                     "Home",
		"/modules":              "modules",
		"/modules/foo/commands": "commands",
		"/powershellmodules/":   "powershellmodules",
	}
	for in, want := range tests {
		if got := CrumbLabel(in); got != want {
			t.Errorf("CrumbLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderDefaultLayout(t *testing.T) {
	r, err := New("", "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	site := &models.SiteConfig{Title: "Docs"}
	page := &models.Page{
		URL:     "/modules/foo/commands/bar/",
		Title:   "Bar",
		Content: "<h1>Bar</h1>",
		Data: models.PageData{
			BreadcrumbPaths: []string{"/", "/modules", "/modules/foo"},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, site, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Bar | Docs</title>",
		`<a href="/">Home</a>`,
		`<a href="/modules/foo">foo</a>`,
		"<h1>Bar</h1>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderNoBreadcrumbs(t *testing.T) {
	r, err := New("", "")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	page := &models.Page{URL: "/about/", Content: "<p>About</p>"}
	if err := r.Render(&buf, &models.SiteConfig{Title: "Docs"}, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "breadcrumb") {
		t.Errorf("output has breadcrumb nav for out-of-scope page:\n%s", buf.String())
	}
}

func TestRenderCustomLayout(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "page.html")
	tmpl := `{{.Page.URL}}|{{index .Data "module_name"}}|{{index .Data "command_section"}}`
	if err := os.WriteFile(layout, []byte(tmpl), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := New(layout, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	page := &models.Page{URL: "/modules/foo/", Data: models.PageData{ModuleName: "Foo", CommandSection: true}}
	if err := r.Render(&buf, &models.SiteConfig{}, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "/modules/foo/|Foo|true" {
		t.Errorf("Render() = %q", buf.String())
	}
}

func TestNewMissingLayout(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing.html"), ""); err == nil {
		t.Error("New() with missing layout error = nil")
	}
}

func TestRenderNamedLayouts(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"command.html": `command:{{index .Data "module_name"}}:{{.Content}}`,
		"module.html":  `module:{{.Page.Title}}`,
		"notes.txt":    `not a layout`,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	r, err := New("", dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := strings.Join(r.Layouts(), ","); got != "command,module" {
		t.Errorf("Layouts() = %q, want %q", got, "command,module")
	}

	tests := []struct {
		name    string
		layout  string
		want    string
		wantErr bool
	}{
		{name: "named layout", layout: "command", want: "command:Foo:<p>x</p>"},
		{name: "other named layout", layout: "module", want: "module:Bar"},
		{name: "unset uses site layout", layout: "", want: "<!DOCTYPE html>"},
		{name: "default keyword uses site layout", layout: "default", want: "<!DOCTYPE html>"},
		{name: "unknown layout", layout: "missing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &models.Page{
				URL:     "/modules/foo/commands/bar",
				Title:   "Bar",
				Layout:  tt.layout,
				Content: "<p>x</p>",
				Data:    models.PageData{ModuleName: "Foo", CommandSection: true},
			}
			var buf bytes.Buffer
			err := r.Render(&buf, &models.SiteConfig{Title: "Docs"}, page)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Errorf("Render() = %q, want prefix %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewMissingLayoutsDir(t *testing.T) {
	r, err := New("", filepath.Join(t.TempDir(), "layouts"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(r.Layouts()) != 0 {
		t.Errorf("Layouts() = %v, want none", r.Layouts())
	}
}

func TestNewBrokenNamedLayout(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.html"), []byte("{{.Page"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New("", dir); err == nil {
		t.Error("New() with unparsable named layout error = nil")
	}
}
