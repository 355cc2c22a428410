package config

import "sort"

// SiteConfig is one named download-page preset.
type SiteConfig struct {
	// HomeURL is the download page and the base for relative hrefs.
	HomeURL string `yaml:"homeURL,omitempty"`

	// Arch is the default architecture keyword for this site.
	Arch string `yaml:"arch,omitempty"`

	// Headers are extra HTTP request headers to send to this site.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// File represents the structure of the .rtresolve.yaml configuration file.
type File struct {
	// Sites maps preset names to their configurations.
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains values applied to every site unless overridden
	// in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// Lookup returns the configuration for a named site, merged with defaults.
// The boolean reports whether the site exists in the file.
func (cf *File) Lookup(name string) (SiteConfig, bool) {
	site, ok := cf.Sites[name]
	if !ok {
		return SiteConfig{}, false
	}

	merged := cf.Defaults
	if site.HomeURL != "" {
		merged.HomeURL = site.HomeURL
	}
	if site.Arch != "" {
		merged.Arch = site.Arch
	}
	if len(site.Headers) > 0 {
		if merged.Headers == nil {
			merged.Headers = make(map[string]string)
		} else {
			// Copy so callers never mutate the defaults map.
			copied := make(map[string]string, len(merged.Headers))
			for k, v := range merged.Headers {
				copied[k] = v
			}
			merged.Headers = copied
		}
		for k, v := range site.Headers {
			merged.Headers[k] = v
		}
	}
	return merged, true
}

// SiteNames returns the configured site names in sorted order, giving the
// check command a deterministic sweep order.
func (cf *File) SiteNames() []string {
	names := make([]string, 0, len(cf.Sites))
	for name := range cf.Sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
