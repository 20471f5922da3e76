package extractors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/extract-text/models"
)

// Structural is the last-resort backend: an unconditional full-document
// sweep that extracts all visible text plus headings, links, and images
// without judging quality. It never populates metadata.
type Structural struct{}

func NewStructural() *Structural {
	return &Structural{}
}

func (b *Structural) Name() string { return models.MethodStructural }

// noiseSelector matches elements stripped before text extraction.
const noiseSelector = "script, style, nav, header, footer, aside, noscript, iframe, svg"

func (b *Structural) Attempt(html string) (doc *models.ExtractedDocument) {
	defer recovered(b.Name(), &doc)

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.Failure(b.Name(), "%v", err)
	}

	// Strip noise first so navigation chrome never leaks into any field.
	gq.Find(noiseSelector).Remove()

	title := collapseWhitespace(gq.Find("title").First().Text())
	headings := collectHeadings(gq)
	links := collectLinks(gq)
	images := collectImages(gq)

	text := collapseWhitespace(mainContent(gq).Text())
	if text == "" {
		return models.Failure(b.Name(), "returned empty")
	}

	return &models.ExtractedDocument{
		Success:        true,
		Text:           text,
		WordCount:      models.CountWords(text),
		Method:         b.Name(),
		TitleExtracted: title,
		Headings:       headings,
		Links:          links,
		Images:         images,
	}
}

// mainContent picks the densest candidate container: <main>, <article>, or
// #content inside body, else the body, else the whole document.
func mainContent(gq *goquery.Document) *goquery.Selection {
	body := gq.Find("body").First()
	if body.Length() == 0 {
		return gq.Selection
	}
	for _, sel := range []string{"main", "article", "#content"} {
		if candidate := body.Find(sel).First(); candidate.Length() > 0 {
			return candidate
		}
	}
	return body
}

func collectHeadings(gq *goquery.Document) []models.Heading {
	var headings []models.Heading
	gq.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(headings) >= models.MaxHeadings {
			return false
		}
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, models.Heading{
			Level: level,
			Text:  models.Truncate(collapseWhitespace(s.Text())),
		})
		return true
	})
	return headings
}

func collectLinks(gq *goquery.Document) []models.Link {
	var links []models.Link
	gq.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(links) >= models.MaxLinks {
			return false
		}
		href := s.AttrOr("href", "")
		if !keepLink(href) {
			return true
		}
		links = append(links, models.Link{
			URL:  href,
			Text: models.Truncate(collapseWhitespace(s.Text())),
		})
		return true
	})
	return links
}

func collectImages(gq *goquery.Document) []models.Image {
	var images []models.Image
	gq.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(images) >= models.MaxImages {
			return false
		}
		images = append(images, models.Image{
			URL: s.AttrOr("src", ""),
			Alt: models.Truncate(s.AttrOr("alt", "")),
		})
		return true
	})
	return images
}
