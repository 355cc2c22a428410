package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beamtools/rtresolve/internal/config"
	"github.com/beamtools/rtresolve/internal/model"
	"github.com/beamtools/rtresolve/internal/resolver"
)

// TestListCmd exercises the list command against inline and fetched pages.
func TestListCmd(t *testing.T) {
	const page = `<a href="/dl/runtime-x86_64.tgz">x86_64 runtime</a>` +
		`<a href="/about">About</a>` +
		`<a href="/dl/runtime-aarch64.tgz">aarch64 runtime</a>`

	t.Run("plain output lists candidates in order", func(t *testing.T) {
		clearInputEnv(t)
		out, err := execute(t, "list",
			"--html", page,
			"--home-url", "https://example.org/",
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 candidates, got %d:\n%s", len(lines), out)
		}
		if !strings.Contains(lines[0], "runtime-x86_64.tgz") ||
			!strings.Contains(lines[1], "runtime-aarch64.tgz") {
			t.Errorf("candidates out of order:\n%s", out)
		}
	})

	t.Run("json output decodes into a ListReport", func(t *testing.T) {
		clearInputEnv(t)
		out, err := execute(t, "list",
			"--html", page,
			"--home-url", "https://example.org/",
			"--json",
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var r model.ListReport
		if err := json.Unmarshal([]byte(out), &r); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(r.Candidates) != 2 || r.Source != "flag" {
			t.Errorf("unexpected report: %+v", r)
		}
	})

	t.Run("fetches page when no html supplied", func(t *testing.T) {
		clearInputEnv(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(page))
		}))
		defer srv.Close()

		out, err := execute(t, "list", "--home-url", srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "runtime-x86_64.tgz") {
			t.Errorf("fetched candidates missing:\n%s", out)
		}
	})

	t.Run("no candidates maps to ErrNotFound", func(t *testing.T) {
		clearInputEnv(t)
		_, err := execute(t, "list",
			"--html", `<a href="/about">About</a>`,
			"--home-url", "https://example.org/",
		)
		if !errors.Is(err, resolver.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing home url is a usage error", func(t *testing.T) {
		clearInputEnv(t)
		_, err := execute(t, "list", "--html", page)
		if !errors.Is(err, config.ErrNoHomeURL) {
			t.Errorf("expected ErrNoHomeURL, got %v", err)
		}
	})

	t.Run("json and markdown conflict", func(t *testing.T) {
		clearInputEnv(t)
		_, err := execute(t, "list",
			"--html", page,
			"--home-url", "https://example.org/",
			"--json", "--markdown",
		)
		if !errors.Is(err, config.ErrConflictingFormats) {
			t.Errorf("expected ErrConflictingFormats, got %v", err)
		}
	})
}
