package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Builds: one row per modsite build run
CREATE TABLE IF NOT EXISTS builds (
    build_id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    page_count INTEGER DEFAULT 0,
    failed INTEGER DEFAULT 0
);

-- Pages: latest known state of every built page, keyed by URL
CREATE TABLE IF NOT EXISTS pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL UNIQUE,
    source_path TEXT NOT NULL,
    output_path TEXT,
    content_hash TEXT,
    title TEXT,
    lang TEXT,
    module_name TEXT,
    breadcrumb_title TEXT,
    command_section BOOLEAN DEFAULT 0,
    last_build_id INTEGER,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (last_build_id) REFERENCES builds(build_id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_pages_module ON pages(module_name);
CREATE INDEX IF NOT EXISTS idx_pages_build ON pages(last_build_id);

-- Breadcrumb paths in order, replaced on every upsert
CREATE TABLE IF NOT EXISTS page_breadcrumbs (
    page_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    path TEXT NOT NULL,
    PRIMARY KEY (page_id, position),
    FOREIGN KEY (page_id) REFERENCES pages(page_id) ON DELETE CASCADE
);
`
