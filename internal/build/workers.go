package build

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dtnitsch/modsite/internal/common"
	"github.com/dtnitsch/modsite/models"
	"github.com/dtnitsch/modsite/pkg/content"
	"github.com/dtnitsch/modsite/pkg/convert"
	"github.com/dtnitsch/modsite/pkg/db"
	"github.com/dtnitsch/modsite/pkg/hooks"
	"github.com/dtnitsch/modsite/pkg/manifest"
	"github.com/dtnitsch/modsite/pkg/render"
	"github.com/dtnitsch/modsite/pkg/storage"
)

// Builder holds everything a site build needs. Database is optional.
type Builder struct {
	Logger   *slog.Logger
	Config   *models.SiteConfig
	Hooks    *hooks.Pipeline
	Renderer *render.Renderer
	Storage  *storage.Storage
	Database *db.DB
	Force    bool // rewrite outputs even when unchanged
}

// Run loads, transforms, renders and writes every page.
// Page-level failures are reported in the Report; setup and load failures
// are returned as errors.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	cfg := b.Config
	logger := b.Logger

	pages, err := content.Load(ctx, cfg.ContentDir, content.Options{
		PrettyURLs:    cfg.UsePrettyURLs(),
		IncludeDrafts: cfg.Drafts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	report := &Report{}
	if b.Database != nil {
		report.BuildID, err = b.Database.StartBuild()
		if err != nil {
			return nil, err
		}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	logger.Info("Starting build", "pages", len(pages), "workers", workers, "hooks", b.Hooks.Names(), "build_id", report.BuildID)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(pages))
	results := make(chan Result, len(pages))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go b.worker(ctx, w, &wg, jobs, results)
	}

	for _, page := range pages {
		jobs <- Job{Page: page}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All build workers finished")

	report.Results = make([]Result, 0, len(pages))
	for result := range results {
		report.Results = append(report.Results, result)
	}
	if err := ctx.Err(); err != nil {
		b.abandon(report)
		return nil, err
	}

	b.collect(report)
	return report, nil
}

// collect records results in the manifest and writes the summary.
// It runs on a single goroutine so the manifest has one writer.
func (b *Builder) collect(report *Report) {
	logger := b.Logger
	summaryResults := make([]manifest.PageResult, 0, len(report.Results))

	for _, r := range report.Results {
		summaryResults = append(summaryResults, manifest.PageResult{
			Page:          r.Page,
			Error:         r.Error,
			ErrorType:     r.ErrorType,
			FileSizeBytes: r.FileSizeBytes,
		})

		if r.Error != nil {
			report.Failed++
			continue
		}
		report.Successful++
		if r.Unchanged {
			report.Unchanged++
		}

		if b.Database != nil {
			if _, err := b.Database.UpsertPage(report.BuildID, r.Page, r.ContentHash); err != nil {
				logger.Warn("Failed to record page in manifest", "url", r.Page.URL, "error", err)
			}
		}
	}

	if b.Database != nil {
		if err := b.Database.FinishBuild(report.BuildID, len(report.Results), report.Failed); err != nil {
			logger.Warn("Failed to finish build in manifest", "build_id", report.BuildID, "error", err)
		}
	}

	summaryPath, err := manifest.GenerateSummary(summaryResults, manifest.Options{
		BuildID: report.BuildID,
		Hooks:   b.Hooks.Names(),
	}, b.Storage)
	if err != nil {
		logger.Warn("Failed to write build summary", "error", err)
	} else {
		report.SummaryPath = summaryPath
	}
}

// abandon closes the manifest build row of a cancelled build with the
// results gathered so far. Nothing else is recorded.
func (b *Builder) abandon(report *Report) {
	if b.Database == nil {
		return
	}
	failed := 0
	for _, r := range report.Results {
		if r.Error != nil {
			failed++
		}
	}
	if err := b.Database.FinishBuild(report.BuildID, len(report.Results), failed); err != nil {
		b.Logger.Warn("Failed to finish cancelled build in manifest", "build_id", report.BuildID, "error", err)
	}
	b.Logger.Warn("Build cancelled", "build_id", report.BuildID, "pages_done", len(report.Results), "failed", failed)
}

// worker processes jobs from the jobs channel and sends results to the results channel.
func (b *Builder) worker(ctx context.Context, id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		if ctx.Err() != nil {
			continue // drain
		}
		b.Logger.Debug("Worker started page", "worker_id", id, "url", job.Page.URL)
		results <- b.buildPage(id, job.Page)
	}
}

func (b *Builder) buildPage(id int, page *models.Page) Result {
	logger := b.Logger
	result := Result{Page: page}

	convert.ToHTML(page)
	b.Hooks.Run(page)

	var buf bytes.Buffer
	if err := b.Renderer.Render(&buf, b.Config, page); err != nil {
		logger.Error("Error rendering page", "worker_id", id, "url", page.URL, "error", err)
		result.Error = err
		result.ErrorType = ErrorTypeRender
		return result
	}

	out := buf.Bytes()
	result.ContentHash = common.ContentHash(out)
	result.FileSizeBytes = int64(len(out))

	if !b.Force && b.unchanged(page, result.ContentHash, result.FileSizeBytes) {
		logger.Debug("Page unchanged, skipping write", "worker_id", id, "url", page.URL)
		result.Unchanged = true
		return result
	}

	if err := b.Storage.SaveFile(page.OutputPath, out); err != nil {
		logger.Error("Error saving page", "worker_id", id, "url", page.URL, "path", page.OutputPath, "error", err)
		result.Error = err
		result.ErrorType = ErrorTypeSave
		return result
	}

	logger.Debug("Worker finished page", "worker_id", id, "url", page.URL, "bytes", result.FileSizeBytes)
	return result
}

// unchanged reports whether the manifest already holds this exact output
// and the file on disk still has its size.
func (b *Builder) unchanged(page *models.Page, hash string, size int64) bool {
	if b.Database == nil {
		return false
	}
	stats, err := b.Storage.GetFileStats(page.OutputPath)
	if err != nil || stats.SizeBytes != size {
		return false
	}
	stored, err := b.Database.GetPageHash(page.URL)
	if err != nil {
		b.Logger.Warn("Failed to read manifest hash", "url", page.URL, "error", err)
		return false
	}
	return stored == hash
}
