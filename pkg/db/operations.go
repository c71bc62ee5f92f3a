package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/modsite/models"
)

// ErrNotFound is returned when a page is not in the manifest.
var ErrNotFound = errors.New("not found")

// Build is a single recorded build run.
type Build struct {
	BuildID    int64
	StartedAt  time.Time
	FinishedAt sql.NullTime
	PageCount  int
	Failed     int
}

// PageRecord is the manifest row for a built page.
type PageRecord struct {
	PageID          int64
	URL             string
	SourcePath      string
	OutputPath      string
	ContentHash     string
	Title           string
	Lang            string
	ModuleName      string
	BreadcrumbTitle string
	CommandSection  bool
	LastBuildID     int64
	UpdatedAt       time.Time
	BreadcrumbPaths []string
}

// PageFilter narrows ListPages. Zero values match everything.
type PageFilter struct {
	ModuleName string
	BuildID    int64
	Limit      int
}

// StartBuild records a new build and returns its ID.
func (db *DB) StartBuild() (int64, error) {
	result, err := db.Exec(`INSERT INTO builds (started_at) VALUES (?)`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to start build: %w", err)
	}
	buildID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get build ID: %w", err)
	}
	return buildID, nil
}

// FinishBuild stores the final page counts for a build.
func (db *DB) FinishBuild(buildID int64, pageCount, failed int) error {
	result, err := db.Exec(`
		UPDATE builds SET finished_at = ?, page_count = ?, failed = ?
		WHERE build_id = ?
	`, time.Now().UTC(), pageCount, failed, buildID)
	if err != nil {
		return fmt.Errorf("failed to finish build: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("build %d: %w", buildID, ErrNotFound)
	}
	return nil
}

// GetBuild returns a recorded build.
func (db *DB) GetBuild(buildID int64) (*Build, error) {
	b := &Build{}
	err := db.QueryRow(`
		SELECT build_id, started_at, finished_at, page_count, failed
		FROM builds WHERE build_id = ?
	`, buildID).Scan(&b.BuildID, &b.StartedAt, &b.FinishedAt, &b.PageCount, &b.Failed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("build %d: %w", buildID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	return b, nil
}

// UpsertPage stores a built page and replaces its breadcrumb paths.
func (db *DB) UpsertPage(buildID int64, page *models.Page, contentHash string) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO pages (url, source_path, output_path, content_hash, title, lang,
			module_name, breadcrumb_title, command_section, last_build_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			source_path = excluded.source_path,
			output_path = excluded.output_path,
			content_hash = excluded.content_hash,
			title = excluded.title,
			lang = excluded.lang,
			module_name = excluded.module_name,
			breadcrumb_title = excluded.breadcrumb_title,
			command_section = excluded.command_section,
			last_build_id = excluded.last_build_id,
			updated_at = excluded.updated_at
	`, page.URL, page.SourcePath, NewNullString(page.OutputPath), NewNullString(contentHash),
		NewNullString(page.Title), NewNullString(page.Lang),
		NewNullString(page.Data.ModuleName), NewNullString(page.Data.BreadcrumbTitle),
		page.Data.CommandSection, NewNullInt64(buildID), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to upsert page: %w", err)
	}

	var pageID int64
	if err := tx.QueryRow(`SELECT page_id FROM pages WHERE url = ?`, page.URL).Scan(&pageID); err != nil {
		return 0, fmt.Errorf("failed to get page ID: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM page_breadcrumbs WHERE page_id = ?`, pageID); err != nil {
		return 0, fmt.Errorf("failed to clear breadcrumbs: %w", err)
	}
	for i, p := range page.Data.BreadcrumbPaths {
		if _, err := tx.Exec(`
			INSERT INTO page_breadcrumbs (page_id, position, path) VALUES (?, ?, ?)
		`, pageID, i, p); err != nil {
			return 0, fmt.Errorf("failed to insert breadcrumb: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit page: %w", err)
	}
	return pageID, nil
}

const pageColumns = `page_id, url, source_path, output_path, content_hash, title, lang,
	module_name, breadcrumb_title, command_section, last_build_id, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*PageRecord, error) {
	var (
		p                             PageRecord
		outputPath, hash, title, lang sql.NullString
		moduleName, breadcrumbTitle   sql.NullString
		lastBuildID                   sql.NullInt64
	)
	err := row.Scan(&p.PageID, &p.URL, &p.SourcePath, &outputPath, &hash, &title, &lang,
		&moduleName, &breadcrumbTitle, &p.CommandSection, &lastBuildID, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.OutputPath = outputPath.String
	p.ContentHash = hash.String
	p.Title = title.String
	p.Lang = lang.String
	p.ModuleName = moduleName.String
	p.BreadcrumbTitle = breadcrumbTitle.String
	p.LastBuildID = lastBuildID.Int64
	return &p, nil
}

// GetPage returns a page and its breadcrumb paths by URL.
func (db *DB) GetPage(url string) (*PageRecord, error) {
	row := db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE url = ?`, url)
	p, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("page %s: %w", url, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	p.BreadcrumbPaths, err = db.GetBreadcrumbs(p.PageID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetBreadcrumbs returns a page's breadcrumb paths in order.
func (db *DB) GetBreadcrumbs(pageID int64) ([]string, error) {
	rows, err := db.Query(`
		SELECT path FROM page_breadcrumbs WHERE page_id = ? ORDER BY position
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query breadcrumbs: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan breadcrumb: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// ListPages returns pages ordered by URL.
func (db *DB) ListPages(filter PageFilter) ([]PageRecord, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE 1=1`
	var args []any
	if filter.ModuleName != "" {
		query += ` AND module_name = ?`
		args = append(args, filter.ModuleName)
	}
	if filter.BuildID > 0 {
		query += ` AND last_build_id = ?`
		args = append(args, filter.BuildID)
	}
	query += ` ORDER BY url`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []PageRecord
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// GetPageHash returns the stored content hash for a URL, or "" when unknown.
func (db *DB) GetPageHash(url string) (string, error) {
	var hash sql.NullString
	err := db.QueryRow(`SELECT content_hash FROM pages WHERE url = ?`, url).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get page hash: %w", err)
	}
	return hash.String, nil
}
