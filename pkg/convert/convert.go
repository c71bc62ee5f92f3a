// Package convert turns page bodies into HTML.
package convert

import (
	"github.com/dtnitsch/modsite/models"
	"github.com/russross/blackfriday/v2"
)

const extensions = blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs

// Markdown renders a Markdown body to HTML.
func Markdown(body []byte) string {
	return string(blackfriday.Run(body, blackfriday.WithExtensions(extensions)))
}

// ToHTML fills page.Content from page.Body. HTML sources pass through unchanged.
func ToHTML(page *models.Page) {
	switch page.Format {
	case models.FormatHTML:
		page.Content = string(page.Body)
	default:
		page.Content = Markdown(page.Body)
	}
}
