package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile verifies YAML loading and its error cases.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads sites and defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `defaults:
  arch: x86_64
sites:
  beam:
    homeURL: https://beam.example.org/downloads/
  arm-mirror:
    homeURL: https://mirror.example.org/
    arch: aarch64
    headers:
      Authorization: Bearer t
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cf.Sites) != 2 {
			t.Fatalf("expected 2 sites, got %d", len(cf.Sites))
		}
		if cf.Defaults.Arch != "x86_64" {
			t.Errorf("defaults not loaded: %+v", cf.Defaults)
		}
		site, ok := cf.Lookup("arm-mirror")
		if !ok {
			t.Fatal("expected arm-mirror to exist")
		}
		if site.Arch != "aarch64" || site.Headers["Authorization"] != "Bearer t" {
			t.Errorf("site not loaded as expected: %+v", site)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("sites: [not a map"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("empty file yields empty site map", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Sites == nil {
			t.Error("expected non-nil Sites map")
		}
	})
}

// TestFindConfigFile verifies the explicit-path branch; the cwd/XDG/home
// search depends on ambient directories and is not exercised here.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("sites: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q", path, got)
		}
	})

	t.Run("explicit missing path yields empty", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "absent.yaml")
		if got := FindConfigFile(missing); got != "" {
			t.Errorf("expected empty result, got %q", got)
		}
	})
}
