package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/modsite/models"
	"github.com/dtnitsch/modsite/pkg/storage"
)

func sampleResults() []PageResult {
	return []PageResult{
		{
			Page: &models.Page{
				URL:        "/modules/az/commands/get-azvm/",
				SourcePath: "modules/az/commands/get-azvm.md",
				OutputPath: "modules/az/commands/get-azvm/index.html",
				Data: models.PageData{
					BreadcrumbPaths: []string{"/", "/modules", "/modules/az"},
					ModuleName:      "Az",
					CommandSection:  true,
				},
			},
			FileSizeBytes: 120,
		},
		{
			Page: &models.Page{URL: "/modules/az/", Data: models.PageData{ModuleName: "Az"}},
		},
		{
			Page:      &models.Page{URL: "/broken/", SourcePath: "broken.md"},
			Error:     errors.New("template: boom"),
			ErrorType: "render_error",
		},
	}
}

func TestBuild(t *testing.T) {
	m := Build(sampleResults(), Options{BuildID: 7, Hooks: []string{"breadcrumbs"}})

	if m.TotalPages != 3 || m.Successful != 2 || m.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", m.TotalPages, m.Successful, m.Failed)
	}
	if m.BuildID != 7 {
		t.Errorf("BuildID = %d", m.BuildID)
	}
	if !reflect.DeepEqual(m.Modules, []string{"Az:2"}) {
		t.Errorf("Modules = %v, want [Az:2]", m.Modules)
	}

	failed := m.Results[2]
	if failed.Status != "error" || failed.ErrorType != "render_error" || failed.ErrorMessage != "template: boom" {
		t.Errorf("failed summary = %+v", failed)
	}
	if m.Results[0].SizeBytes != 120 || m.Results[0].OutputPath == "" {
		t.Errorf("success summary = %+v", m.Results[0])
	}
}

func TestGenerateSummary(t *testing.T) {
	s := storage.New(t.TempDir())

	path, err := GenerateSummary(sampleResults(), Options{}, s)
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	if path != SummaryFile {
		t.Errorf("path = %q, want %q", path, SummaryFile)
	}

	data, err := os.ReadFile(filepath.Join(s.Root, path))
	if err != nil {
		t.Fatal(err)
	}
	var m SummaryManifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("summary is not valid JSON: %v", err)
	}
	if len(m.Results) != 3 {
		t.Errorf("Results = %d, want 3", len(m.Results))
	}
}
