package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/beamtools/rtresolve/internal/config"
)

// TestInitCmd verifies config file generation.
func TestInitCmd(t *testing.T) {
	t.Run("creates a parseable starter file", func(t *testing.T) {
		clearInputEnv(t)
		output := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		out, err := execute(t, "init", "-o", output)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, output) {
			t.Errorf("expected created path in output: %q", out)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("file not written: %v", err)
		}
		var cf config.File
		if err := yaml.Unmarshal(data, &cf); err != nil {
			t.Errorf("template is not valid YAML: %v", err)
		}
		if cf.Defaults.Arch == "" {
			t.Error("expected template to set a default arch")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		clearInputEnv(t)
		output := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(output, []byte("sites: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := execute(t, "init", "-o", output); err == nil {
			t.Error("expected error for existing file")
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		clearInputEnv(t)
		output := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(output, []byte("sites: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := execute(t, "init", "-o", output, "-f"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		data, _ := os.ReadFile(output)
		if !strings.Contains(string(data), "rtresolve site presets") {
			t.Error("file not replaced by template")
		}
	})
}
