package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Extraction archive: one row per completed extraction run
CREATE TABLE IF NOT EXISTS extractions (
    extraction_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,               -- file path, URL, or "stdin"
    content_hash TEXT NOT NULL,         -- sha256 of the input HTML
    success INTEGER NOT NULL DEFAULT 0,
    method TEXT,                        -- readability, heuristic, structural
    word_count INTEGER DEFAULT 0,
    title TEXT,
    error TEXT,
    duration_ms INTEGER DEFAULT 0,

    -- Top keywords as JSON array: [{"word":"w","count":3}, ...]
    top_keywords TEXT,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_extractions_hash ON extractions(content_hash);
CREATE INDEX IF NOT EXISTS idx_extractions_method ON extractions(method);
CREATE INDEX IF NOT EXISTS idx_extractions_created ON extractions(created_at);
`
