// Package models defines the unified extraction result schema shared by
// every backend adapter.
package models

import (
	"fmt"
	"strings"
)

// Per-field limits applied by every adapter. Centralized here so all
// backends emit the same shape regardless of which one wins.
const (
	MaxHeadings = 50
	MaxLinks    = 500
	MaxImages   = 100
	MaxFieldLen = 200 // runes, for heading/link/alt text
)

// Backend method names. Each adapter stamps its own name on success.
const (
	MethodReadability = "readability"
	MethodHeuristic   = "heuristic"
	MethodStructural  = "structural"
)

// Heading is one document heading in source order.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Link is one hyperlink in source order. Fragment-only and javascript:
// hrefs are never emitted.
type Link struct {
	URL  string `json:"url" yaml:"url"`
	Text string `json:"text" yaml:"text"`
}

// Image is one image reference in source order.
type Image struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// Metadata holds document-level metadata. Only the readability backend
// populates it.
type Metadata struct {
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Date        string   `json:"date,omitempty" yaml:"date,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	SiteName    string   `json:"sitename,omitempty" yaml:"sitename,omitempty"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Language    string   `json:"language,omitempty" yaml:"language,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m *Metadata) IsZero() bool {
	return m == nil || (m.Title == "" && m.Author == "" && m.Date == "" &&
		m.Description == "" && m.SiteName == "" && m.Language == "" &&
		len(m.Categories) == 0 && len(m.Tags) == 0)
}

// ExtractedDocument is the unified result every backend adapter produces.
// It is constructed once per attempt and never mutated afterwards.
//
// Exactly one of the following holds:
//   - Success true: Text is non-empty and Method names the backend.
//   - Success false: Error describes what went wrong.
type ExtractedDocument struct {
	Success        bool      `json:"success" yaml:"success"`
	Text           string    `json:"text,omitempty" yaml:"text,omitempty"`
	WordCount      int       `json:"word_count" yaml:"word_count"`
	Metadata       *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Method         string    `json:"method,omitempty" yaml:"method,omitempty"`
	Error          string    `json:"error,omitempty" yaml:"error,omitempty"`
	TitleExtracted string    `json:"title_extracted,omitempty" yaml:"title_extracted,omitempty"`
	Headings       []Heading `json:"headings,omitempty" yaml:"headings,omitempty"`
	Links          []Link    `json:"links,omitempty" yaml:"links,omitempty"`
	Images         []Image   `json:"images,omitempty" yaml:"images,omitempty"`
}

// Failure builds the failed-extraction result for a backend. The message is
// tagged with the backend name so the orchestrator's final error identifies
// which attempt it came from.
func Failure(backend, format string, args ...any) *ExtractedDocument {
	return &ExtractedDocument{
		Success: false,
		Error:   backend + ": " + fmt.Sprintf(format, args...),
	}
}

// CountWords derives the word count the same way for every backend:
// whitespace-split fields of the normalized text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Truncate caps a per-field string at MaxFieldLen runes.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxFieldLen {
		return s
	}
	return string(r[:MaxFieldLen])
}
