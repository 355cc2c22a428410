package htmlx

import (
	"html"
	"regexp"
	"strings"
)

var (
	// tagRun matches tag-like substrings. Inner anchor content may carry
	// nested markup (<strong>, <span>, ...) that must not leak into
	// keyword matching.
	tagRun = regexp.MustCompile(`<[^>]+>`)

	// spaceRun matches runs of whitespace, including newlines and tabs.
	spaceRun = regexp.MustCompile(`\s+`)
)

// NormalizeText reduces a fragment of HTML to a plain-text search form:
// tag-like substrings become a single space, character references are
// decoded, whitespace runs collapse to one space, and the result is trimmed
// and lower-cased.
//
// Normalizing already-normalized text returns it unchanged.
func NormalizeText(s string) string {
	s = tagRun.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}
