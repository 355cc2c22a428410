package model

import "time"

// Site check outcomes.
const (
	// StatusResolved means the site's page yielded a runtime URL.
	StatusResolved = "resolved"

	// StatusNotFound means the page was fetched but no anchor matched.
	StatusNotFound = "not found"

	// StatusError means fetching or resolution failed outright.
	StatusError = "error"
)

// SiteResult is the outcome of checking one configured site.
type SiteResult struct {
	// Site is the preset name from the configuration file.
	Site string `json:"site"`

	// HomeURL is the page that was fetched.
	HomeURL string `json:"home_url"`

	// Arch is the architecture keyword the site was checked against.
	Arch string `json:"arch"`

	// URL is the resolved runtime URL, empty unless Status is resolved.
	URL string `json:"url,omitempty"`

	// Error carries the failure message when Status is error.
	Error string `json:"error,omitempty"`

	// Status is one of StatusResolved, StatusNotFound, StatusError.
	Status string `json:"status"`
}

// CheckReport is the output of the check command across all swept sites.
type CheckReport struct {
	// Results holds one entry per site, ordered by site name.
	Results []SiteResult `json:"results"`

	// GeneratedAt is when the sweep completed.
	GeneratedAt time.Time `json:"generated_at"`
}

// AllResolved reports whether every site in the sweep produced a URL.
// An empty sweep counts as resolved.
func (r *CheckReport) AllResolved() bool {
	for _, res := range r.Results {
		if res.Status != StatusResolved {
			return false
		}
	}
	return true
}
