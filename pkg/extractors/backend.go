// Package extractors wraps the individual extraction capabilities behind a
// common Backend interface so the orchestrator never deals with
// library-specific types or error behavior.
package extractors

import "github.com/dtnitsch/extract-text/models"

// Backend is one pluggable extraction capability.
//
// Attempt is a pure function of the HTML input: it must not panic, must not
// keep state between calls, and always returns a well-formed document —
// underlying library failures come back as Success=false results, never as
// errors or panics.
type Backend interface {
	Name() string
	Attempt(html string) *models.ExtractedDocument
}

// recovered converts a panic from a wrapped library into a failed document.
// Defer it around any call into third-party parsing code.
func recovered(backend string, doc **models.ExtractedDocument) {
	if r := recover(); r != nil {
		*doc = models.Failure(backend, "panic: %v", r)
	}
}
