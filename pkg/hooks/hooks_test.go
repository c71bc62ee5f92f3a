package hooks

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/modsite/models"
)

func recorder(name string, calls *[]string) Hook {
	return Func{HookName: name, Fn: func(page *models.Page) {
		*calls = append(*calls, name+":"+page.URL)
	}}
}

func TestPipelineRunOrder(t *testing.T) {
	var calls []string
	p := New(recorder("a", &calls), nil, recorder("b", &calls))

	p.Run(&models.Page{URL: "/x/"})

	want := []string{"a:/x/", "b:/x/"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPipelineRunNil(t *testing.T) {
	var calls []string
	New(recorder("a", &calls)).Run(nil)
	if len(calls) != 0 {
		t.Errorf("Run(nil) invoked hooks: %v", calls)
	}

	var p *Pipeline
	p.Run(&models.Page{})
}

func TestPipelineFilter(t *testing.T) {
	var calls []string
	p := New(recorder("breadcrumbs", &calls), recorder("title", &calls), recorder("excerpt", &calls))

	tests := []struct {
		name    string
		enable  []string
		disable []string
		want    []string
	}{
		{
			name: "no filter keeps all",
			want: []string{"breadcrumbs", "title", "excerpt"},
		},
		{
			name:   "enable subset keeps order",
			enable: []string{"excerpt", "breadcrumbs"},
			want:   []string{"breadcrumbs", "excerpt"},
		},
		{
			name:    "disable removes",
			disable: []string{"title"},
			want:    []string{"breadcrumbs", "excerpt"},
		},
		{
			name:    "disable wins over enable",
			enable:  []string{"title", "excerpt"},
			disable: []string{"title"},
			want:    []string{"excerpt"},
		},
		{
			name:   "unknown enable yields empty",
			enable: []string{"missing"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Filter(tt.enable, tt.disable).Names()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() names = %v, want %v", got, tt.want)
			}
		})
	}

	// Filtering does not mutate the source pipeline.
	if p.Len() != 3 {
		t.Errorf("source Len() = %d after Filter, want 3", p.Len())
	}
}
