package config

import "errors"

// Usage and validation errors. Package-level sentinels so callers can use
// errors.Is while still surfacing readable messages; all of them are
// detected before the resolver runs, so a failing invocation produces no
// partial output.
var (
	// ErrNoHomeURL is returned when no base URL arrived via --home-url
	// or the HOME_URL environment variable.
	ErrNoHomeURL = errors.New("no base URL: provide --home-url or set HOME_URL")

	// ErrNoNeedleArch is returned when no architecture keyword arrived
	// via --needle-arch or the NEEDLE_ARCH environment variable.
	ErrNoNeedleArch = errors.New("no architecture keyword: provide --needle-arch or set NEEDLE_ARCH")

	// ErrNoHTML is returned when no HTML document arrived via --html,
	// the HTML environment variable, or piped standard input, and
	// fetching was not requested.
	ErrNoHTML = errors.New("no HTML input: provide --html, set HTML, pipe a document, or pass --fetch")

	// ErrInvalidTimeout is returned when the fetch timeout is not
	// positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is
	// negative. Zero means the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrInvalidWorkers is returned when the check concurrency is not
	// positive.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrConflictingFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownSite is returned when --site names a preset absent from
	// the configuration file.
	ErrUnknownSite = errors.New("unknown site: not present in configuration file")

	// ErrNoSites is returned by the check command when no configuration
	// file with site presets could be found.
	ErrNoSites = errors.New("no sites configured: create a configuration file with rtresolve init")
)
