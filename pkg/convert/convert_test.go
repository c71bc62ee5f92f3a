package convert

import (
	"strings"
	"testing"

	"github.com/dtnitsch/modsite/models"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		page     models.Page
		contains []string
	}{
		{
			name:     "markdown heading and paragraph",
			page:     models.Page{Format: models.FormatMarkdown, Body: []byte("# Get-Foo\n\nGets foo.\n")},
			contains: []string{`<h1 id="get-foo">Get-Foo</h1>`, "<p>Gets foo.</p>"},
		},
		{
			name:     "markdown fenced code",
			page:     models.Page{Format: models.FormatMarkdown, Body: []byte("```powershell\nGet-Foo -Name x\n```\n")},
			contains: []string{`<code class="language-powershell">`, "Get-Foo -Name x"},
		},
		{
			name:     "html passthrough",
			page:     models.Page{Format: models.FormatHTML, Body: []byte("<h1>Raw</h1>")},
			contains: []string{"<h1>Raw</h1>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := tt.page
			ToHTML(&page)
			for _, want := range tt.contains {
				if !strings.Contains(page.Content, want) {
					t.Errorf("Content = %q, want it to contain %q", page.Content, want)
				}
			}
		})
	}
}
