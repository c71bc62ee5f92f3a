package enrich

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/modsite/models"
	"github.com/go-shiori/go-readability"
)

// DefaultExcerptLength caps derived excerpts, in runes.
const DefaultExcerptLength = 200

// Excerpt sets a missing page excerpt using readability extraction.
type Excerpt struct {
	BaseURL   string
	MaxLength int
}

func (e Excerpt) Name() string { return ExcerptHookName }

func (e Excerpt) PreRender(page *models.Page) {
	if page == nil || page.Excerpt != "" || strings.TrimSpace(page.Content) == "" {
		return
	}

	pageURL, err := resolvePageURL(e.BaseURL, page.URL)
	if err != nil {
		return
	}

	var excerpt string
	doc := "<html><body><article>" + page.Content + "</article></body></html>"
	parser := readability.NewParser()
	if article, err := parser.Parse(strings.NewReader(doc), pageURL); err == nil {
		excerpt = normalizeText(article.Excerpt)
	}
	if excerpt == "" {
		excerpt = firstParagraph(page.Content)
	}

	max := e.MaxLength
	if max <= 0 {
		max = DefaultExcerptLength
	}
	page.Excerpt = truncate(excerpt, max)
}

// firstParagraph is used when readability cannot extract an article,
// which happens for very short pages.
func firstParagraph(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return normalizeText(doc.Find("p").First().Text())
}

func resolvePageURL(base, pagePath string) (*url.URL, error) {
	if base == "" {
		base = "http://localhost/"
	}
	b, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	ref, err := url.Parse(strings.TrimPrefix(pagePath, "/"))
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	return b.ResolveReference(ref), nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := strings.TrimSpace(string(runes[:max]))
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
