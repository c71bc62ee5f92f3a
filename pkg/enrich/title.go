// Package enrich provides optional pre-render hooks that fill page fields
// from converted content.
package enrich

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/modsite/models"
)

// Hook names used in transforms.enable / transforms.disable.
const (
	TitleHookName    = "title"
	ExcerptHookName  = "excerpt"
	LanguageHookName = "language"
)

// TitleFromHeading sets a missing page title from the first h1.
type TitleFromHeading struct{}

func (TitleFromHeading) Name() string { return TitleHookName }

func (TitleFromHeading) PreRender(page *models.Page) {
	if page == nil || page.Title != "" || page.Content == "" {
		return
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Content))
	if err != nil {
		return
	}
	page.Title = normalizeText(doc.Find("h1").First().Text())
}

// PlainText returns the visible text of an HTML fragment.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script,style,pre").Remove()
	return normalizeText(doc.Text())
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
