package db

import (
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertExtraction(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rec := ExtractionRecord{
		Source:      "testdata/article.html",
		ContentHash: "abc123def456",
		Success:     true,
		Method:      "readability",
		WordCount:   342,
		Title:       "How Tides Work",
		DurationMS:  18,
		TopKeywords: `[{"word":"tides","count":12}]`,
	}

	id, err := db.InsertExtraction(rec)
	if err != nil {
		t.Fatalf("InsertExtraction() failed: %v", err)
	}
	if id == 0 {
		t.Error("InsertExtraction() returned 0 ID")
	}

	var gotSource, gotMethod string
	var gotWords int
	err = db.QueryRow(`
		SELECT source, method, word_count FROM extractions WHERE extraction_id = ?
	`, id).Scan(&gotSource, &gotMethod, &gotWords)
	if err != nil {
		t.Fatalf("failed to query extraction: %v", err)
	}
	if gotSource != rec.Source {
		t.Errorf("source = %q, want %q", gotSource, rec.Source)
	}
	if gotMethod != rec.Method {
		t.Errorf("method = %q, want %q", gotMethod, rec.Method)
	}
	if gotWords != rec.WordCount {
		t.Errorf("word_count = %d, want %d", gotWords, rec.WordCount)
	}
}

func TestInsertExtraction_FailedRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.InsertExtraction(ExtractionRecord{
		Source:      "stdin",
		ContentHash: "deadbeef",
		Success:     false,
		Error:       "readability: returned empty",
	})
	if err != nil {
		t.Fatalf("InsertExtraction() failed: %v", err)
	}

	records, err := db.ListExtractions(10)
	if err != nil {
		t.Fatalf("ListExtractions() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	got := records[0]
	if got.ExtractionID != id {
		t.Errorf("extraction_id = %d, want %d", got.ExtractionID, id)
	}
	if got.Success {
		t.Error("success = true, want false")
	}
	if got.Error != "readability: returned empty" {
		t.Errorf("error = %q", got.Error)
	}
	if got.Method != "" {
		t.Errorf("method = %q, want empty for failed run", got.Method)
	}
}

func TestListExtractions_NewestFirstAndLimited(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sources := []string{"a.html", "b.html", "c.html"}
	for _, src := range sources {
		if _, err := db.InsertExtraction(ExtractionRecord{Source: src, ContentHash: "h", Success: true, Method: "structural"}); err != nil {
			t.Fatalf("InsertExtraction(%s) failed: %v", src, err)
		}
	}

	records, err := db.ListExtractions(2)
	if err != nil {
		t.Fatalf("ListExtractions() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Source != "c.html" || records[1].Source != "b.html" {
		t.Errorf("order = [%s, %s], want newest first", records[0].Source, records[1].Source)
	}
}

func TestCountByMethod(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs := []ExtractionRecord{
		{Source: "a", ContentHash: "h", Success: true, Method: "readability"},
		{Source: "b", ContentHash: "h", Success: true, Method: "readability"},
		{Source: "c", ContentHash: "h", Success: true, Method: "structural"},
		{Source: "d", ContentHash: "h", Success: false, Error: "readability: boom"},
	}
	for _, rec := range runs {
		if _, err := db.InsertExtraction(rec); err != nil {
			t.Fatalf("InsertExtraction() failed: %v", err)
		}
	}

	counts, err := db.CountByMethod()
	if err != nil {
		t.Fatalf("CountByMethod() failed: %v", err)
	}
	if counts["readability"] != 2 {
		t.Errorf("readability wins = %d, want 2", counts["readability"])
	}
	if counts["structural"] != 1 {
		t.Errorf("structural wins = %d, want 1", counts["structural"])
	}
	if _, ok := counts[""]; ok {
		t.Error("failed runs counted toward method wins")
	}
}
