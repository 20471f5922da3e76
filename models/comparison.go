package models

// Comparison is the compare-all output: every backend's raw attempt plus
// the result the normal fallback cascade would have chosen.
type Comparison struct {
	Readability *ExtractedDocument `json:"readability" yaml:"readability"`
	Heuristic   *ExtractedDocument `json:"heuristic" yaml:"heuristic"`
	Structural  *ExtractedDocument `json:"structural" yaml:"structural"`
	Preferred   *ExtractedDocument `json:"preferred" yaml:"preferred"`
}
