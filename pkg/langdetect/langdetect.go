// Package langdetect identifies the language of extracted text.
//
// Building a lingua detector loads statistical language models, which is far
// too expensive to repeat per extraction. The handle is resolved lazily and
// exactly once per process; every later call reuses it.
package langdetect

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// candidates bounds the model set loaded into memory. Detection only ever
// answers with one of these.
var candidates = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

var detector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		Build()
})

// Detect returns the lowercase ISO 639-1 code for the text's language.
// It reports false when the text is empty or no candidate language is a
// confident match.
func Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := detector().DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
