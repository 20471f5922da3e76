package extractors

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/dtnitsch/extract-text/models"
	"github.com/dtnitsch/extract-text/pkg/langdetect"
)

// Readability is the primary backend: go-readability article extraction with
// the strongest precision on real article pages. It is the only backend that
// populates document-level metadata.
type Readability struct{}

func NewReadability() *Readability {
	return &Readability{}
}

func (b *Readability) Name() string { return models.MethodReadability }

// fallbackURL satisfies go-readability's need for a document base URL when
// the HTML comes from a file or stdin.
var fallbackURL = &url.URL{Scheme: "http", Host: "localhost"}

func (b *Readability) Attempt(html string) (doc *models.ExtractedDocument) {
	defer recovered(b.Name(), &doc)

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), fallbackURL)
	if err != nil {
		return models.Failure(b.Name(), "%v", err)
	}

	text := collapseWhitespace(article.TextContent)
	if text == "" {
		return models.Failure(b.Name(), "returned empty")
	}

	meta := &models.Metadata{
		Title:       article.Title,
		Author:      article.Byline,
		Description: article.Excerpt,
		SiteName:    article.SiteName,
	}
	if article.PublishedTime != nil {
		meta.Date = article.PublishedTime.Format("2006-01-02")
	}
	meta.Categories, meta.Tags = scanMetaTags(html)
	if lang, ok := langdetect.Detect(text); ok {
		meta.Language = lang
	}
	if meta.IsZero() {
		meta = nil
	}

	return &models.ExtractedDocument{
		Success:        true,
		Text:           text,
		WordCount:      models.CountWords(text),
		Metadata:       meta,
		Method:         b.Name(),
		TitleExtracted: article.Title,
	}
}

// scanMetaTags pulls categories and tags out of the document head. This is
// best-effort enrichment; a malformed head just yields nothing.
func scanMetaTags(html string) (categories, tags []string) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	gq.Find(`meta[property="article:section"]`).Each(func(_ int, s *goquery.Selection) {
		if content := strings.TrimSpace(s.AttrOr("content", "")); content != "" {
			categories = append(categories, content)
		}
	})
	gq.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if content := strings.TrimSpace(s.AttrOr("content", "")); content != "" {
			tags = append(tags, content)
		}
	})
	if keywords := gq.Find(`meta[name="keywords"]`).AttrOr("content", ""); keywords != "" {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				tags = append(tags, kw)
			}
		}
	}
	return categories, tags
}
