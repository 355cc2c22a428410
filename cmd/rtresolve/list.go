package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beamtools/rtresolve/internal/config"
	"github.com/beamtools/rtresolve/internal/model"
	"github.com/beamtools/rtresolve/internal/report"
	"github.com/beamtools/rtresolve/internal/resolver"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every runtime download candidate on a page",
		Long: `List scans a download page and prints every anchor mentioning "runtime",
in document order, with hrefs resolved to absolute URLs. Unlike the root
command it does not filter by architecture, which makes it useful for
discovering what a mirror offers.

The page arrives the same way as for resolution: --html, the HTML
environment variable, piped stdin, or a fetch from the base URL.

Examples:
  # List candidates on a page, fetching it directly
  rtresolve list --fetch --home-url https://example.org/downloads/

  # Machine-readable output
  rtresolve list --fetch --site beam --json`,
		RunE: runListCmd,
	}

	addInputFlags(cmd)
	addFetchFlags(cmd)
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := materializeInputs(cfg); err != nil {
		return err
	}

	// Listing needs no architecture keyword; only the page and its base
	// URL are required. Fetch is the default when no HTML arrived.
	if cfg.HomeURL == "" {
		return config.ErrNoHomeURL
	}
	if cfg.HTML == "" {
		if err := fetchPage(cmd.Context(), cfg); err != nil {
			return err
		}
	}

	candidates, err := resolver.Candidates(cfg.HTML, cfg.HomeURL)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return resolver.ErrNotFound
	}

	r := &model.ListReport{
		HomeURL:     cfg.HomeURL,
		Source:      sourceLabel(cfg),
		Candidates:  candidates,
		GeneratedAt: time.Now(),
	}
	return report.NewWriter(cmd.OutOrStdout(), reportFormat(cfg)).WriteList(r)
}
