package resolver

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/beamtools/rtresolve/internal/htmlx"
	"github.com/beamtools/rtresolve/internal/model"
)

// keyword is the literal every qualifying anchor must contain in addition
// to the architecture needle.
const keyword = "runtime"

// ErrNotFound is returned when no anchor matches both the runtime keyword
// and the architecture needle. It is a normal outcome of the search, not a
// fault; the CLI maps it to exit status 1 with no output.
var ErrNotFound = errors.New("no runtime download link found")

// Resolve scans doc for anchor elements and returns the absolute URL of the
// first one, in document order, whose entity-decoded href plus normalized
// link text contains both "runtime" and needleArch (case-insensitively).
// Relative hrefs are resolved against homeURL; absolute hrefs pass through
// unchanged.
//
// Both checks are plain substring tests, deliberately not word-boundary
// aware: an href containing "runtime" inside an unrelated word still
// matches. Returns ErrNotFound when no anchor qualifies.
func Resolve(doc, homeURL, needleArch string) (string, error) {
	base, err := url.Parse(homeURL)
	if err != nil {
		return "", fmt.Errorf("parse home url %q: %w", homeURL, err)
	}
	needle := strings.ToLower(needleArch)

	for a := range htmlx.Anchors(doc) {
		href := html.UnescapeString(a.Href)
		haystack := strings.ToLower(href + " " + htmlx.NormalizeText(a.Inner))
		if !strings.Contains(haystack, keyword) || !strings.Contains(haystack, needle) {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			return "", fmt.Errorf("parse href %q: %w", href, err)
		}
		return base.ResolveReference(ref).String(), nil
	}
	return "", ErrNotFound
}

// Candidates returns every anchor in doc whose haystack contains "runtime",
// in document order, with hrefs resolved against homeURL. Anchors whose
// decoded href does not parse as a URL reference are skipped.
func Candidates(doc, homeURL string) ([]model.Candidate, error) {
	base, err := url.Parse(homeURL)
	if err != nil {
		return nil, fmt.Errorf("parse home url %q: %w", homeURL, err)
	}

	var out []model.Candidate
	for a := range htmlx.Anchors(doc) {
		href := html.UnescapeString(a.Href)
		text := htmlx.NormalizeText(a.Inner)
		haystack := strings.ToLower(href + " " + text)
		if !strings.Contains(haystack, keyword) {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		out = append(out, model.Candidate{
			URL:  base.ResolveReference(ref).String(),
			Href: href,
			Text: text,
		})
	}
	return out, nil
}
