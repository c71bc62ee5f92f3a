// Package db keeps the build manifest: builds, pages and their breadcrumb
// trails, stored in SQLite.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory manifest.
const MemoryPath = ":memory:"

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 1

// ErrSchemaVersion is returned for a manifest written by a newer modsite.
var ErrSchemaVersion = errors.New("unsupported manifest schema version")

// DB is an open build manifest.
type DB struct {
	*sql.DB
	path string
}

// dsn applies connection pragmas to every pooled connection, not just the
// first one.
func dsn(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Open opens the manifest at path, creating its directory and schema when
// missing.
func Open(path string) (*DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	if path == MemoryPath {
		// Every connection would see its own empty database.
		conn.SetMaxOpenConns(1)
	}

	db := &DB{DB: conn, path: path}
	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to prepare manifest %s: %w", path, err)
	}
	return db, nil
}

// migrate creates the schema on a fresh file and refuses newer ones.
func (db *DB) migrate() error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	switch {
	case version == schemaVersion:
		return nil
	case version > schemaVersion:
		return fmt.Errorf("%w: found %d, support %d", ErrSchemaVersion, version, schemaVersion)
	}

	if err := db.InitSchema(); err != nil {
		return err
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// Path returns the manifest location as given to Open.
func (db *DB) Path() string {
	return db.path
}

// InitSchema creates any missing tables and indexes.
func (db *DB) InitSchema() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
