package build

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/modsite/internal/common"
	"github.com/dtnitsch/modsite/models"
	"github.com/dtnitsch/modsite/pkg/breadcrumb"
	"github.com/dtnitsch/modsite/pkg/db"
	"github.com/dtnitsch/modsite/pkg/render"
	"github.com/dtnitsch/modsite/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// loadConfig reads the config file and applies CLI overrides.
func loadConfig(c *cli.Context) (*models.SiteConfig, error) {
	cfg, err := models.LoadSiteConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("source") {
		cfg.ContentDir = c.String("source")
	}
	if c.IsSet("destination") {
		cfg.OutputDir = c.String("destination")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("layout") {
		cfg.Layout = c.String("layout")
	}
	if c.IsSet("layouts") {
		cfg.LayoutsDir = c.String("layouts")
	}
	if c.IsSet("db") {
		cfg.ManifestDB = c.String("db")
	}
	if c.IsSet("drafts") {
		cfg.Drafts = c.Bool("drafts")
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// BuildAction builds the site.
// Exit codes: 0 success, 1 some pages failed, 2 setup failure or every page failed.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := loadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	pipeline, err := NewPipeline(cfg)
	if err != nil {
		logger.Error("failed to assemble hooks", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	renderer, err := render.New(cfg.Layout, cfg.LayoutsDir)
	if err != nil {
		logger.Error("failed to load layout", "layout", cfg.Layout, "layouts_dir", cfg.LayoutsDir, "error", err)
		return cli.Exit(err.Error(), 2)
	}
	logger.Debug("layouts loaded", "layouts", renderer.Layouts())

	builder := &Builder{
		Logger:   logger,
		Config:   cfg,
		Hooks:    pipeline,
		Renderer: renderer,
		Storage:  storage.New(cfg.OutputDir),
		Force:    c.Bool("force"),
	}

	if !c.Bool("no-manifest") {
		database, err := db.Open(cfg.ManifestPath())
		if err != nil {
			logger.Error("failed to open manifest database", "path", cfg.ManifestPath(), "error", err)
			return cli.Exit(err.Error(), 2)
		}
		defer database.Close()
		logger.Debug("manifest opened", "path", database.Path())
		builder.Database = database
	}

	report, err := builder.Run(c.Context)
	if err != nil {
		logger.Error("build failed", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	fmt.Fprintf(c.App.Writer, "Built %d/%d pages (%d unchanged) into %s\n",
		report.Successful, len(report.Results), report.Unchanged, cfg.OutputDir)
	if report.SummaryPath != "" {
		fmt.Fprintf(c.App.Writer, "Summary: %s\n", report.SummaryPath)
	}
	if !c.Bool("quiet") {
		for _, r := range report.Results {
			if r.Error != nil {
				fmt.Fprintf(c.App.ErrWriter, "  FAILED %s (%s): %v\n", r.Page.URL, r.ErrorType, r.Error)
			}
		}
	}

	if len(report.Results) > 0 && report.Failed == len(report.Results) {
		return cli.Exit("all pages failed", 2)
	}
	if report.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d page(s) failed", report.Failed), 1)
	}
	return nil
}

// Crumbs annotates each URL and returns the derived data.
func Crumbs(urls []string) []PageOutput {
	out := make([]PageOutput, 0, len(urls))
	for _, u := range urls {
		var data models.PageData
		breadcrumb.Annotate(u, &data)
		out = append(out, PageOutput{URL: u, Data: data.Map()})
	}
	return out
}

// CrumbsAction prints the breadcrumb data derived for URLs given as arguments.
func CrumbsAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one URL is required, e.g. modsite crumbs /modules/foo/commands/bar/", 1)
	}

	data, err := marshal(Crumbs(c.Args().Slice()), c.String("format"))
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, string(data))
	return nil
}

// PagesAction lists pages recorded in the build manifest.
func PagesAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.ManifestPath()); err != nil {
		return cli.Exit(fmt.Sprintf("no build manifest at %s. Run 'modsite build' first", cfg.ManifestPath()), 1)
	}

	database, err := db.Open(cfg.ManifestPath())
	if err != nil {
		return fmt.Errorf("failed to open manifest: %w", err)
	}
	defer database.Close()

	pages, err := database.ListPages(db.PageFilter{
		ModuleName: c.String("module"),
		BuildID:    c.Int64("build"),
		Limit:      c.Int("limit"),
	})
	if err != nil {
		return err
	}

	if format := strings.ToLower(c.String("format")); format != "" && format != "text" {
		out := make([]PageOutput, 0, len(pages))
		for _, p := range pages {
			crumbs, err := database.GetBreadcrumbs(p.PageID)
			if err != nil {
				return err
			}
			data := models.PageData{
				BreadcrumbPaths: crumbs,
				BreadcrumbTitle: p.BreadcrumbTitle,
				ModuleName:      p.ModuleName,
				CommandSection:  p.CommandSection,
			}
			out = append(out, PageOutput{URL: p.URL, Data: data.Map()})
		}
		data, err := marshal(out, format)
		if err != nil {
			return err
		}
		fmt.Fprint(c.App.Writer, string(data))
		return nil
	}

	for _, p := range pages {
		module := p.ModuleName
		if module == "" {
			module = "-"
		}
		fmt.Fprintf(c.App.Writer, "%-50s %-20s %s\n", p.URL, module, p.SourcePath)
	}
	return nil
}

func marshal(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		return append(data, '\n'), nil
	case "", "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
