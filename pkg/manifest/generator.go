package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/modsite/models"
	"github.com/dtnitsch/modsite/pkg/mapreduce"
	"github.com/dtnitsch/modsite/pkg/storage"
)

// SummaryFile is written at the root of the output directory.
const SummaryFile = "build-summary.json"

// PageResult represents the outcome of building a single page.
// This is passed from the build package to avoid circular dependencies.
type PageResult struct {
	Page          *models.Page
	Error         error
	ErrorType     string
	FileSizeBytes int64
}

// Options carries build-wide values recorded in the summary.
type Options struct {
	BuildID int64
	Hooks   []string
}

// Build assembles the summary without writing it.
func Build(results []PageResult, opts Options) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		BuildID:     opts.BuildID,
		TotalPages:  len(results),
		Hooks:       opts.Hooks,
		Results:     make([]PageSummary, 0, len(results)),
	}

	var counts []map[string]int
	for _, result := range results {
		summary := PageSummary{}
		if result.Page != nil {
			summary.URL = result.Page.URL
			summary.SourcePath = result.Page.SourcePath
		}

		if result.Error != nil {
			manifest.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			manifest.Successful++
			summary.Status = "success"
			summary.SizeBytes = result.FileSizeBytes
			if result.Page != nil {
				summary.OutputPath = result.Page.OutputPath
				summary.ModuleName = result.Page.Data.ModuleName
				summary.BreadcrumbPaths = result.Page.Data.BreadcrumbPaths
				counts = append(counts, mapreduce.Map(result.Page))
			}
		}

		manifest.Results = append(manifest.Results, summary)
	}

	manifest.Modules = mapreduce.TopCounts(mapreduce.Reduce(counts), 0)
	return manifest
}

// GenerateSummary creates the summary manifest file for a build.
// Returns the path of the generated file relative to the storage root.
func GenerateSummary(results []PageResult, opts Options, s *storage.Storage) (string, error) {
	manifest := Build(results, opts)

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(SummaryFile, manifestData); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return SummaryFile, nil
}
