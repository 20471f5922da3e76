package db

import (
	"database/sql"
	"fmt"
	"time"
)

// ExtractionRecord is one archived extraction run.
type ExtractionRecord struct {
	ExtractionID int64     `json:"extraction_id" yaml:"extraction_id"`
	Source       string    `json:"source" yaml:"source"`
	ContentHash  string    `json:"content_hash" yaml:"content_hash"`
	Success      bool      `json:"success" yaml:"success"`
	Method       string    `json:"method,omitempty" yaml:"method,omitempty"`
	WordCount    int       `json:"word_count" yaml:"word_count"`
	Title        string    `json:"title,omitempty" yaml:"title,omitempty"`
	Error        string    `json:"error,omitempty" yaml:"error,omitempty"`
	DurationMS   int64     `json:"duration_ms" yaml:"duration_ms"`
	TopKeywords  string    `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// InsertExtraction archives one run and returns its row ID.
func (db *DB) InsertExtraction(rec ExtractionRecord) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO extractions (source, content_hash, success, method, word_count, title, error, duration_ms, top_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Source, rec.ContentHash, boolToInt(rec.Success), nullable(rec.Method),
		rec.WordCount, nullable(rec.Title), nullable(rec.Error), rec.DurationMS,
		nullable(rec.TopKeywords))
	if err != nil {
		return 0, fmt.Errorf("failed to insert extraction: %w", err)
	}
	return result.LastInsertId()
}

// ListExtractions returns the most recent runs, newest first.
func (db *DB) ListExtractions(limit int) ([]ExtractionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT extraction_id, source, content_hash, success, method, word_count, title, error, duration_ms, top_keywords, created_at
		FROM extractions
		ORDER BY extraction_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query extractions: %w", err)
	}
	defer rows.Close()

	var records []ExtractionRecord
	for rows.Next() {
		rec, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountByMethod reports how many archived runs each backend won.
func (db *DB) CountByMethod() (map[string]int, error) {
	rows, err := db.Query(`
		SELECT method, COUNT(*) FROM extractions
		WHERE success = 1 AND method IS NOT NULL
		GROUP BY method
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by method: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var method string
		var count int
		if err := rows.Scan(&method, &count); err != nil {
			return nil, fmt.Errorf("failed to scan method count: %w", err)
		}
		counts[method] = count
	}
	return counts, rows.Err()
}

func scanExtraction(rows *sql.Rows) (ExtractionRecord, error) {
	var rec ExtractionRecord
	var success int
	var method, title, errMsg, topKeywords sql.NullString
	var createdAt string

	err := rows.Scan(&rec.ExtractionID, &rec.Source, &rec.ContentHash, &success,
		&method, &rec.WordCount, &title, &errMsg, &rec.DurationMS, &topKeywords, &createdAt)
	if err != nil {
		return rec, fmt.Errorf("failed to scan extraction: %w", err)
	}

	rec.Success = success != 0
	rec.Method = method.String
	rec.Title = title.String
	rec.Error = errMsg.String
	rec.TopKeywords = topKeywords.String
	if t, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
		rec.CreatedAt = t
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
