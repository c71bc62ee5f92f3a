// Package models defines data structures for site configuration and pages.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "modsite.yaml"
	DefaultContentDir = "content"
	DefaultOutputDir  = "_site"
	DefaultWorkers    = 4
	DefaultDBName     = ".modsite.db"
	DefaultLayoutsDir = "layouts"
)

// SiteConfig holds the site-wide build configuration.
// Values come from modsite.yaml and may be overridden by CLI flags.
type SiteConfig struct {
	Title      string     `yaml:"title"`
	BaseURL    string     `yaml:"base_url,omitempty"`
	ContentDir string     `yaml:"content_dir,omitempty"`
	OutputDir  string     `yaml:"output_dir,omitempty"`
	Layout     string     `yaml:"layout,omitempty"`      // optional html/template file
	LayoutsDir string     `yaml:"layouts_dir,omitempty"` // named layouts picked by front-matter layout
	Workers    int        `yaml:"workers,omitempty"`
	ManifestDB string     `yaml:"manifest_db,omitempty"`
	Languages  []string   `yaml:"languages,omitempty"` // ISO-639-1 codes, empty disables detection
	PrettyURLs *bool      `yaml:"pretty_urls,omitempty"`
	Drafts     bool       `yaml:"drafts,omitempty"`
	Transforms Transforms `yaml:"transforms,omitempty"`
}

// Transforms enables or disables named pre-render hooks.
// If both lists are set, Disable takes precedence over Enable.
type Transforms struct {
	Enable  []string `yaml:"enable,omitempty"` // empty means all
	Disable []string `yaml:"disable,omitempty"`
}

// DefaultSiteConfig returns a config with every default applied.
func DefaultSiteConfig() *SiteConfig {
	cfg := &SiteConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadSiteConfig reads a YAML config file. A missing file yields defaults.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSiteConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &SiteConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills in unset fields.
func (c *SiteConfig) ApplyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.LayoutsDir == "" {
		c.LayoutsDir = DefaultLayoutsDir
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.PrettyURLs == nil {
		pretty := true
		c.PrettyURLs = &pretty
	}
}

// ManifestPath returns the build manifest location, defaulting to a file
// inside the output directory.
func (c *SiteConfig) ManifestPath() string {
	if c.ManifestDB != "" {
		return c.ManifestDB
	}
	return filepath.Join(c.OutputDir, DefaultDBName)
}

// UsePrettyURLs reports whether Markdown pages get directory-style URLs.
func (c *SiteConfig) UsePrettyURLs() bool {
	return c.PrettyURLs == nil || *c.PrettyURLs
}
