package model

import (
	"net/url"
	"path"
	"time"
)

// Candidate is one runtime download link discovered on a page.
type Candidate struct {
	// URL is the absolute URL after resolution against the base URL.
	URL string `json:"url"`

	// Href is the entity-decoded href attribute as found in the document.
	Href string `json:"href"`

	// Text is the normalized link text, empty when the anchor had none.
	Text string `json:"text,omitempty"`
}

// FileName returns the final path element of the candidate URL, used as the
// default output name when downloading. Returns empty when the URL has no
// usable path.
func (c Candidate) FileName() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// ListReport is the output of the list command: every runtime candidate on
// one page, in document order.
type ListReport struct {
	// HomeURL is the base URL candidates were resolved against.
	HomeURL string `json:"home_url"`

	// Source describes where the HTML came from: "inline", "stdin",
	// "env", or the URL that was fetched.
	Source string `json:"source"`

	// Candidates holds the discovered links in document order.
	Candidates []Candidate `json:"candidates"`

	// GeneratedAt is when the listing was produced.
	GeneratedAt time.Time `json:"generated_at"`
}
