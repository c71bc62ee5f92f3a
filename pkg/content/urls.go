package content

import (
	"path"
	"path/filepath"
	"strings"
)

// URLFor derives a page URL from its path relative to the content root.
//
//	index.md, modules/index.html   -> /, /modules/
//	modules/foo.md                 -> /modules/foo/ (pretty) or /modules/foo.html
//	modules/foo.html               -> /modules/foo.html
func URLFor(rel string, prettyURLs bool) string {
	rel = filepath.ToSlash(rel)
	dir, file := path.Split(rel)
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	dirURL := "/" + strings.Trim(dir, "/")
	if dirURL != "/" {
		dirURL += "/"
	}

	if name == "index" {
		return dirURL
	}
	if isMarkdown(ext) {
		if prettyURLs {
			return dirURL + name + "/"
		}
		return dirURL + name + ".html"
	}
	return dirURL + file
}

// NormalizePermalink ensures a front matter permalink is rooted.
func NormalizePermalink(permalink string) string {
	permalink = strings.TrimSpace(permalink)
	if !strings.HasPrefix(permalink, "/") {
		permalink = "/" + permalink
	}
	return permalink
}

// OutputPathFor maps a URL to a file path relative to the output root.
// Directory-style URLs are written as index.html inside that directory.
func OutputPathFor(url string) string {
	rel := strings.TrimPrefix(path.Clean("/"+url), "/")
	if strings.HasSuffix(url, "/") || rel == "" {
		return filepath.FromSlash(path.Join(rel, "index.html"))
	}
	return filepath.FromSlash(rel)
}
