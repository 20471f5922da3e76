// Package keywords computes stopword-filtered word frequencies over
// extracted text, for run summaries and the extraction archive.
package keywords

import (
	"sort"
	"strings"
)

// stopwords are high-frequency words excluded from frequency analysis.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "for": {}, "from": {},
	"had": {}, "has": {}, "have": {}, "he": {}, "her": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "just": {}, "more": {}, "most": {}, "my": {}, "no": {},
	"not": {}, "of": {}, "on": {}, "one": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "out": {}, "over": {}, "she": {}, "so": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {}, "their": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "to": {}, "under": {}, "up": {}, "was": {},
	"we": {}, "were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "why": {}, "will": {}, "with": {}, "would": {},
	"you": {}, "your": {},
}

// Keyword is one word and its occurrence count.
type Keyword struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Frequency counts occurrences of each non-stopword in the text. Words are
// lowercased and stripped of surrounding punctuation before counting.
func Frequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		freq[word]++
	}
	return freq
}

// Top returns the n most frequent keywords, ordered by count descending
// with ties broken alphabetically so output is deterministic.
func Top(freq map[string]int, n int) []Keyword {
	ranked := make([]Keyword, 0, len(freq))
	for word, count := range freq {
		ranked = append(ranked, Keyword{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
