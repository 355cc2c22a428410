package htmlx

import (
	"iter"
	"regexp"
)

// anchorPattern recognizes one anchor element: an opening <a> tag carrying a
// double-quoted href attribute, through the first closing </a> that follows.
// (?i) makes tag and attribute names case-insensitive and (?s) lets the inner
// content span multiple lines. Other attributes may appear on either side of
// href. Anchors without a closing tag never match and are therefore skipped.
var anchorPattern = regexp.MustCompile(`(?is)<a\s+[^>]*href="([^"]+)"[^>]*>(.*?)</a>`)

// Anchor is one anchor element lifted out of an HTML document.
// Both fields are captured verbatim: Href is the raw attribute value with
// entities still encoded, and Inner may contain nested markup.
type Anchor struct {
	// Href is the value of the href attribute, exactly as written.
	Href string

	// Inner is the content between the opening and closing tags.
	Inner string
}

// Anchors returns an iterator over the anchor elements of doc in document
// order. The sequence is lazy (the document is scanned as the caller
// advances) and restartable (ranging over it again rescans from the top).
func Anchors(doc string) iter.Seq[Anchor] {
	return func(yield func(Anchor) bool) {
		rest := doc
		for {
			m := anchorPattern.FindStringSubmatchIndex(rest)
			if m == nil {
				return
			}
			a := Anchor{
				Href:  rest[m[2]:m[3]],
				Inner: rest[m[4]:m[5]],
			}
			if !yield(a) {
				return
			}
			rest = rest[m[1]:]
		}
	}
}
