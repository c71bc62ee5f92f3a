// Package content loads source pages from a content directory.
package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/modsite/models"
	"github.com/dtnitsch/modsite/pkg/frontmatter"
)

// Options controls how pages are loaded.
type Options struct {
	PrettyURLs    bool
	IncludeDrafts bool
}

func isMarkdown(ext string) bool {
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func isHTML(ext string) bool {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return true
	}
	return false
}

// skipName reports whether a file or directory is hidden from the build.
func skipName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// Load walks dir and returns its pages sorted by URL.
func Load(ctx context.Context, dir string, opts Options) ([]*models.Page, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}

	var pages []*models.Page
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p != dir && skipName(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(p)
		if !isMarkdown(ext) && !isHTML(ext) {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}

		page, err := LoadFile(p, rel, opts)
		if err != nil {
			return err
		}
		if page != nil {
			pages = append(pages, page)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].URL < pages[j].URL
	})
	return pages, nil
}

// LoadFile reads a single page. Drafts yield a nil page unless included.
func LoadFile(path, rel string, opts Options) (*models.Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", rel, err)
	}

	matter, body, err := frontmatter.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", rel, err)
	}
	if matter.Draft && !opts.IncludeDrafts {
		return nil, nil
	}

	format := models.FormatMarkdown
	if isHTML(filepath.Ext(path)) {
		format = models.FormatHTML
	}

	url := URLFor(rel, opts.PrettyURLs)
	if matter.Permalink != "" {
		url = NormalizePermalink(matter.Permalink)
	}

	return &models.Page{
		URL:        url,
		SourcePath: filepath.ToSlash(rel),
		OutputPath: OutputPathFor(url),
		Title:      matter.Title,
		Layout:     matter.Layout,
		Lang:       matter.Lang,
		Excerpt:    matter.Excerpt,
		Params:     matter.Params,
		Format:     format,
		Body:       body,
	}, nil
}
