// Package frontmatter splits YAML front matter from page bodies.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	delimiter = []byte("---\n")

	// ErrUnterminated is returned when an opening delimiter has no closing one.
	ErrUnterminated = errors.New("missing closing front matter delimiter")
)

// Matter is the decoded front matter of a page.
// Keys without a dedicated field are kept in Params.
type Matter struct {
	Title     string         `yaml:"title"`
	Layout    string         `yaml:"layout"`
	Permalink string         `yaml:"permalink"`
	Excerpt   string         `yaml:"excerpt"`
	Lang      string         `yaml:"lang"`
	Draft     bool           `yaml:"draft"`
	Params    map[string]any `yaml:",inline"`
}

// Split separates front matter from body. Content that does not start with
// "---" has no front matter and is returned whole as the body.
func Split(content []byte) (fm []byte, body []byte, err error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, nil
	}

	rest := content[len(delimiter):]
	if bytes.HasPrefix(rest, delimiter) {
		// empty front matter
		return []byte{}, rest[len(delimiter):], nil
	}

	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx == -1 {
		// closing delimiter at end of file with no trailing newline
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-4], []byte{}, nil
		}
		return nil, nil, ErrUnterminated
	}

	return rest[:idx], rest[idx+5:], nil
}

// Parse splits content and decodes the front matter.
func Parse(content []byte) (Matter, []byte, error) {
	var m Matter

	fm, body, err := Split(content)
	if err != nil {
		return m, nil, err
	}
	if len(bytes.TrimSpace(fm)) == 0 {
		return m, body, nil
	}

	if err := yaml.Unmarshal(fm, &m); err != nil {
		return m, nil, fmt.Errorf("failed to decode front matter: %w", err)
	}
	return m, body, nil
}
