package extractors

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace folds any run of whitespace into a single space and
// trims the edges, so every backend emits comparably clean text.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// keepLink reports whether an href is meaningful extraction output.
// Empty hrefs, fragment-only anchors, and javascript: pseudo-links are not.
func keepLink(href string) bool {
	if href == "" {
		return false
	}
	if strings.HasPrefix(href, "#") {
		return false
	}
	if strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return false
	}
	return true
}
