package enrich

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dtnitsch/modsite/models"
	"github.com/pemistahl/lingua-go"
)

// minDetectRunes is the shortest text worth running detection on.
const minDetectRunes = 20

// Language sets a missing page language from its content text.
type Language struct {
	mu       sync.Mutex // detector is shared by all build workers
	detector lingua.LanguageDetector
	fixed    string // set when a single language is configured
}

// NewLanguage builds a detector over ISO-639-1 codes such as "en" or "de".
// It returns nil when codes is empty.
func NewLanguage(codes []string) (*Language, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	langs, err := languagesFor(codes)
	if err != nil {
		return nil, err
	}
	if len(langs) == 1 {
		return &Language{fixed: isoCode(langs[0])}, nil
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()
	return &Language{detector: detector}, nil
}

func languagesFor(codes []string) ([]lingua.Language, error) {
	byCode := make(map[string]lingua.Language)
	for _, l := range lingua.AllLanguages() {
		byCode[isoCode(l)] = l
	}

	seen := make(map[lingua.Language]bool)
	var langs []lingua.Language
	for _, code := range codes {
		l, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
		if !ok {
			return nil, fmt.Errorf("unsupported language code %q", code)
		}
		if !seen[l] {
			seen[l] = true
			langs = append(langs, l)
		}
	}
	return langs, nil
}

func isoCode(l lingua.Language) string {
	return strings.ToLower(l.IsoCode639_1().String())
}

func (l *Language) Name() string { return LanguageHookName }

func (l *Language) PreRender(page *models.Page) {
	if l == nil || page == nil || page.Lang != "" {
		return
	}
	if l.fixed != "" {
		page.Lang = l.fixed
		return
	}

	text := PlainText(page.Content)
	if len([]rune(text)) < minDetectRunes {
		return
	}

	l.mu.Lock()
	lang, ok := l.detector.DetectLanguageOf(text)
	l.mu.Unlock()
	if ok {
		page.Lang = isoCode(lang)
	}
}
