// Package extractor selects the best extraction result from a fixed-priority
// chain of backends.
package extractor

import (
	"github.com/dtnitsch/extract-text/models"
	"github.com/dtnitsch/extract-text/pkg/extractors"
)

// QualityThreshold is the entire acceptance policy: extractions at or below
// this many words are treated as boilerplate-only captures, not article
// content, and trigger fallback to the next backend.
const QualityThreshold = 50

// Acceptable is the quality gate applied to the first two backends.
func Acceptable(doc *models.ExtractedDocument) bool {
	return doc != nil && doc.Success && doc.WordCount > QualityThreshold
}

// Orchestrator drives the try/gate/fallback loop over the three backends.
// It is stateless; one instance can serve any number of sequential calls.
type Orchestrator struct {
	primary    extractors.Backend
	fallback   extractors.Backend
	structural extractors.Backend
}

// New builds the standard chain: readability, then the heuristic article
// fallback, then the unconditional structural sweep.
func New() *Orchestrator {
	return &Orchestrator{
		primary:    extractors.NewReadability(),
		fallback:   extractors.NewHeuristic(),
		structural: extractors.NewStructural(),
	}
}

// NewWithBackends builds an orchestrator over caller-supplied backends.
func NewWithBackends(primary, fallback, structural extractors.Backend) *Orchestrator {
	return &Orchestrator{primary: primary, fallback: fallback, structural: structural}
}

// Extract runs the cascade with strict short-circuiting: each backend is
// attempted at most once, and later backends only run when the gate rejects
// every earlier attempt. The caller always gets a well-formed document,
// never an error.
func (o *Orchestrator) Extract(html string) *models.ExtractedDocument {
	return choose(
		func() *models.ExtractedDocument { return o.primary.Attempt(html) },
		func() *models.ExtractedDocument { return o.fallback.Attempt(html) },
		func() *models.ExtractedDocument { return o.structural.Attempt(html) },
	)
}

// CompareAll runs every backend regardless of outcome and reports each raw
// result alongside the one the normal cascade would have chosen. There is
// no extra gate logic here; preferred comes from the same selection policy
// as Extract, applied to the already-computed attempts.
func (o *Orchestrator) CompareAll(html string) *models.Comparison {
	primary := o.primary.Attempt(html)
	fallback := o.fallback.Attempt(html)
	structural := o.structural.Attempt(html)

	preferred := choose(
		func() *models.ExtractedDocument { return primary },
		func() *models.ExtractedDocument { return fallback },
		func() *models.ExtractedDocument { return structural },
	)

	return &models.Comparison{
		Readability: primary,
		Heuristic:   fallback,
		Structural:  structural,
		Preferred:   preferred,
	}
}

// choose encodes the trust ranking: high-precision article extraction first,
// article-detection fallback second, raw structural best-effort third (no
// word-count gate, since rejecting the last resort would leave nothing),
// then the primary attempt as a sub-threshold partial success, and finally
// the primary attempt's failure so the earliest concrete error is reported.
// Earlier priority always wins; there is no scoring across backends.
func choose(primary, fallback, structural func() *models.ExtractedDocument) *models.ExtractedDocument {
	first := primary()
	if Acceptable(first) {
		return first
	}
	if doc := fallback(); Acceptable(doc) {
		return doc
	}
	if doc := structural(); doc != nil && doc.Success {
		return doc
	}
	// Something beats nothing: a primary result just under the gate is still
	// the best available answer, and on total failure the primary error is
	// the one worth surfacing.
	return first
}
