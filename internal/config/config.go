package config

import (
	"os"
	"time"
)

// Default configuration values.
const (
	// DefaultTimeout bounds a single page fetch. Download pages are small
	// static documents; 30 seconds leaves room for slow mirrors without
	// hanging scripted callers for long.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize limits how much of a fetched page is read.
	// 5MB covers any realistic download listing while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultWorkers is the number of concurrent site checks. Sweeps are
	// short-lived; a small bound keeps the tool polite to mirrors.
	DefaultWorkers = 4

	// DefaultUserAgent identifies rtresolve in HTTP requests so mirror
	// operators can recognize scanner traffic in their logs.
	DefaultUserAgent = "rtresolve/1.0 (+https://github.com/beamtools/rtresolve)"

	// AppName is the application name used for XDG directory paths.
	AppName = "rtresolve"
)

// Environment variable names recognized as input fallbacks. These mirror
// the flag names and sit between explicit flags and the stdin fallback in
// the precedence order.
const (
	// EnvHTML supplies the HTML document when --html is absent.
	EnvHTML = "HTML"

	// EnvHomeURL supplies the base URL when --home-url is absent.
	EnvHomeURL = "HOME_URL"

	// EnvNeedleArch supplies the architecture keyword when --needle-arch
	// is absent.
	EnvNeedleArch = "NEEDLE_ARCH"
)

// Config holds all options for one rtresolve invocation. It is populated
// from CLI flags and passed down explicitly; the resolver itself never
// consults flags, environment variables, or any other global state.
type Config struct {
	// HTML is the document to scan. Filled from --html, then the HTML
	// environment variable, then standard input when piped.
	HTML string

	// HTMLSource records where HTML came from ("flag", "env", "stdin",
	// or a fetched URL) for reporting.
	HTMLSource string

	// HomeURL is the base URL relative hrefs are resolved against.
	HomeURL string

	// NeedleArch is the architecture keyword to search for.
	NeedleArch string

	// Site names a preset from the configuration file. Preset values
	// fill only inputs not already set by flag or environment.
	Site string

	// Fetch enables retrieving the page from HomeURL when no HTML was
	// supplied by flag, environment, or stdin.
	Fetch bool

	// Headers are extra HTTP request headers used when fetching.
	Headers map[string]string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// UserAgent is the User-Agent header for HTTP requests.
	UserAgent string

	// MaxBodySize limits how many bytes of a fetched page are read.
	MaxBodySize int64

	// Workers bounds concurrent site checks in the check command.
	Workers int

	// ConfigPath is an explicit site-preset file path; empty means the
	// default search order (cwd, XDG config dir, home directory).
	ConfigPath string

	// JSON selects JSON report output (mutually exclusive with Markdown).
	JSON bool

	// Markdown selects Markdown report output (mutually exclusive with
	// JSON).
	Markdown bool
}

// NewConfig returns a Config with all defaults applied.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Workers:     DefaultWorkers,
	}
}

// FromEnvironment fills unset inputs from the HTML, HOME_URL, and
// NEEDLE_ARCH environment variables. Values already set by flags win.
func (c *Config) FromEnvironment() {
	if c.HTML == "" {
		if v := os.Getenv(EnvHTML); v != "" {
			c.HTML = v
			c.HTMLSource = "env"
		}
	}
	if c.HomeURL == "" {
		c.HomeURL = os.Getenv(EnvHomeURL)
	}
	if c.NeedleArch == "" {
		c.NeedleArch = os.Getenv(EnvNeedleArch)
	}
}

// FromSite fills unset values from a site preset. Explicit flag or
// environment values always win over the preset.
func (c *Config) FromSite(s SiteConfig) {
	if c.HomeURL == "" {
		c.HomeURL = s.HomeURL
	}
	if c.NeedleArch == "" {
		c.NeedleArch = s.Arch
	}
	if len(s.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(s.Headers))
		}
		for k, v := range s.Headers {
			if _, ok := c.Headers[k]; !ok {
				c.Headers[k] = v
			}
		}
	}
}

// Validate checks settings that apply to every command. Input completeness
// (home URL, needle, HTML) is checked separately by ValidateInputs because
// the check command sources those per site.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.JSON && c.Markdown {
		return ErrConflictingFormats
	}
	return nil
}

// ValidateInputs checks that the resolver's three inputs are satisfiable.
// HTML may still be empty when Fetch is set, since the page will then be
// retrieved from HomeURL.
func (c *Config) ValidateInputs() error {
	if c.HomeURL == "" {
		return ErrNoHomeURL
	}
	if c.NeedleArch == "" {
		return ErrNoNeedleArch
	}
	if c.HTML == "" && !c.Fetch {
		return ErrNoHTML
	}
	return nil
}
