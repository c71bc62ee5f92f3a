package build

import (
	"fmt"

	"github.com/dtnitsch/modsite/models"
	"github.com/dtnitsch/modsite/pkg/breadcrumb"
	"github.com/dtnitsch/modsite/pkg/enrich"
	"github.com/dtnitsch/modsite/pkg/hooks"
)

// NewPipeline assembles the pre-render hooks for a site, in run order,
// filtered by the config's transforms lists.
func NewPipeline(cfg *models.SiteConfig) (*hooks.Pipeline, error) {
	all := []hooks.Hook{
		breadcrumb.NewAnnotator(),
		enrich.TitleFromHeading{},
		enrich.Excerpt{BaseURL: cfg.BaseURL},
	}

	lang, err := enrich.NewLanguage(cfg.Languages)
	if err != nil {
		return nil, fmt.Errorf("invalid languages config: %w", err)
	}
	if lang != nil {
		all = append(all, lang)
	}

	return hooks.New(all...).Filter(cfg.Transforms.Enable, cfg.Transforms.Disable), nil
}
