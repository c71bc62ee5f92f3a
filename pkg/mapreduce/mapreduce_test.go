package mapreduce

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/modsite/models"
)

func TestMapReduce(t *testing.T) {
	pages := []*models.Page{
		{Data: models.PageData{ModuleName: "Az"}},
		{Data: models.PageData{ModuleName: "Pester"}},
		{Data: models.PageData{ModuleName: "Az"}},
		{Data: models.PageData{BreadcrumbTitle: "PowerShell Modules"}},
		nil,
	}

	var intermediate []map[string]int
	for _, p := range pages {
		intermediate = append(intermediate, Map(p))
	}

	got := Reduce(intermediate)
	want := map[string]int{"Az": 2, "Pester": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"Pester": 1, "Az": 3, "Dbatools": 3, "PSReadLine": 2}

	tests := []struct {
		n    int
		want []string
	}{
		{2, []string{"Az:3", "Dbatools:3"}},
		{0, []string{"Az:3", "Dbatools:3", "PSReadLine:2", "Pester:1"}},
		{10, []string{"Az:3", "Dbatools:3", "PSReadLine:2", "Pester:1"}},
	}
	for _, tt := range tests {
		if got := TopCounts(counts, tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TopCounts(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}

	if got := TopCounts(nil, 5); len(got) != 0 {
		t.Errorf("TopCounts(nil) = %v", got)
	}
}
