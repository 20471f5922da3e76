package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/extract-text/internal/common"
	"github.com/dtnitsch/extract-text/models"
	"github.com/dtnitsch/extract-text/pkg/db"
	"github.com/dtnitsch/extract-text/pkg/extractor"
	"github.com/dtnitsch/extract-text/pkg/keywords"
)

// ExtractAction reads HTML from the requested origin, runs the fallback
// cascade, and emits the result in the requested output mode and format.
func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	mode, err := models.ParseOutputMode(c.String("output"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	config := &models.ExtractConfig{
		Output:   mode,
		Format:   strings.ToLower(c.String("format")),
		Archive:  c.Bool("archive"),
		Keywords: c.Int("keywords"),
	}

	if c.Args().Len() == 0 && !c.Bool("stdin") && c.String("url") == "" {
		fmt.Fprintln(os.Stderr, "Error: No input provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  extract-text extract page.html")
		fmt.Fprintln(os.Stderr, "  cat page.html | extract-text extract --stdin")
		fmt.Fprintln(os.Stderr, "  extract-text extract --url https://example.com/article")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: extract-text extract --help")
		os.Exit(1)
	}

	html, source, err := common.ReadInput(c.Args().First(), c.Bool("stdin"), c.String("url"))
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(2)
	}
	config.Source = source
	logger.Info("Starting extraction", "source", source, "bytes", len(html), "output", string(config.Output))

	orchestrator := extractor.New()

	switch config.Output {
	case models.OutputAll:
		comparison := orchestrator.CompareAll(html)
		logger.Info("Compare-all finished",
			"preferred_method", comparison.Preferred.Method,
			"preferred_words", comparison.Preferred.WordCount,
			"elapsed", time.Since(startTime).String())
		reportKeywords(logger, comparison.Preferred, config.Keywords)
		if config.Archive {
			archiveResult(logger, config, html, comparison.Preferred, startTime)
		}
		emit(logger, comparison, config.Format)

	case models.OutputText:
		doc := orchestrator.Extract(html)
		reportKeywords(logger, doc, config.Keywords)
		if config.Archive {
			archiveResult(logger, config, html, doc, startTime)
		}
		if !doc.Success {
			fmt.Fprintf(os.Stderr, "Error: %s\n", doc.Error)
			os.Exit(1)
		}
		fmt.Println(doc.Text)

	default:
		doc := orchestrator.Extract(html)
		logger.Info("Extraction finished",
			"success", doc.Success,
			"method", doc.Method,
			"word_count", doc.WordCount,
			"elapsed", time.Since(startTime).String())
		reportKeywords(logger, doc, config.Keywords)
		if config.Archive {
			archiveResult(logger, config, html, doc, startTime)
		}
		emit(logger, doc, config.Format)
	}

	return nil
}

// emit marshals the payload as JSON or YAML and prints it to stdout.
func emit(logger *slog.Logger, payload any, format string) {
	var data []byte
	var err error
	if format == "yaml" {
		data, err = yaml.Marshal(payload)
	} else {
		data, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(data))
}

// reportKeywords logs the top-N keywords of a successful extraction.
func reportKeywords(logger *slog.Logger, doc *models.ExtractedDocument, n int) {
	if n <= 0 || doc == nil || !doc.Success {
		return
	}
	top := keywords.Top(keywords.Frequency(doc.Text), n)
	formatted := make([]string, len(top))
	for i, kw := range top {
		formatted[i] = fmt.Sprintf("%s:%d", kw.Word, kw.Count)
	}
	logger.Info("Top keywords", "keywords", formatted)
}

// archiveResult records the run in the extraction archive. Archive problems
// are warnings, never a reason to fail an extraction that already finished.
func archiveResult(logger *slog.Logger, config *models.ExtractConfig, html string, doc *models.ExtractedDocument, startTime time.Time) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open extraction archive", "error", err)
		return
	}
	defer database.Close()

	rec := db.ExtractionRecord{
		Source:      config.Source,
		ContentHash: common.ContentHash([]byte(html)),
		Success:     doc.Success,
		Method:      doc.Method,
		WordCount:   doc.WordCount,
		Title:       doc.TitleExtracted,
		Error:       doc.Error,
		DurationMS:  time.Since(startTime).Milliseconds(),
	}
	if config.Keywords > 0 && doc.Success {
		if data, err := json.Marshal(keywords.Top(keywords.Frequency(doc.Text), config.Keywords)); err == nil {
			rec.TopKeywords = string(data)
		}
	}

	id, err := database.InsertExtraction(rec)
	if err != nil {
		logger.Warn("failed to archive extraction", "error", err)
		return
	}
	logger.Info("Archived extraction", "extraction_id", id, "db", database.Path())
}
