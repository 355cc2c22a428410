package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/beamtools/rtresolve/internal/config"
	"github.com/beamtools/rtresolve/internal/fetch"
	"github.com/beamtools/rtresolve/internal/model"
	"github.com/beamtools/rtresolve/internal/report"
	"github.com/beamtools/rtresolve/internal/resolver"
)

// ErrCheckFailed is returned when at least one site in a sweep did not
// resolve. The per-site detail is in the report; this error only drives
// the exit status.
var ErrCheckFailed = errors.New("one or more sites did not resolve")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [site...]",
		Short: "Verify that configured sites still resolve a runtime URL",
		Long: `Check sweeps the sites from the configuration file: it fetches each home
page and resolves the runtime URL for the site's architecture. Sites are
checked concurrently, bounded by --workers.

With no arguments every configured site is checked; otherwise only the
named presets are. Exit status is 0 only when every site resolved.

Examples:
  # Check all configured sites
  rtresolve check

  # Check two presets for a specific architecture
  rtresolve check beam mirror --needle-arch riscv64

  # Markdown summary for CI
  rtresolve check --markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	cmd.Flags().String("needle-arch", "",
		"Architecture keyword overriding each site's configured arch")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .rtresolve.yaml in cwd, XDG config dir, or home)")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of concurrent site checks")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout per HTTP request")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header for HTTP requests")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum number of page bytes to read")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	path := config.FindConfigFile(cfg.ConfigPath)
	if path == "" {
		return config.ErrNoSites
	}
	cf, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	names := args
	if len(names) == 0 {
		names = cf.SiteNames()
	}
	if len(names) == 0 {
		return config.ErrNoSites
	}

	r, err := sweepSites(cmd.Context(), cfg, cf, names)
	if err != nil {
		return err
	}
	if err := report.NewWriter(cmd.OutOrStdout(), reportFormat(cfg)).WriteCheck(r); err != nil {
		return err
	}
	if !r.AllResolved() {
		return ErrCheckFailed
	}
	return nil
}

// sweepSites checks each named site concurrently and returns the results
// in the order the names were given. Fetch or resolution failures become
// per-site results, not sweep errors; only an unknown site name aborts.
func sweepSites(ctx context.Context, cfg *config.Config, cf *config.File, names []string) (*model.CheckReport, error) {
	results := make([]model.SiteResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, name := range names {
		site, ok := cf.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("site %q: %w", name, config.ErrUnknownSite)
		}
		arch := cfg.NeedleArch
		if arch == "" {
			arch = site.Arch
		}
		g.Go(func() error {
			results[i] = checkSite(ctx, cfg, name, site, arch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.CheckReport{Results: results, GeneratedAt: time.Now()}, nil
}

// checkSite fetches one site's page and resolves it for arch.
func checkSite(ctx context.Context, cfg *config.Config, name string, site config.SiteConfig, arch string) model.SiteResult {
	res := model.SiteResult{
		Site:    name,
		HomeURL: site.HomeURL,
		Arch:    arch,
	}
	if site.HomeURL == "" {
		res.Status = model.StatusError
		res.Error = config.ErrNoHomeURL.Error()
		return res
	}
	if arch == "" {
		res.Status = model.StatusError
		res.Error = config.ErrNoNeedleArch.Error()
		return res
	}

	f := fetch.NewFetcher(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithHeaders(site.Headers),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)
	page, err := f.Fetch(ctx, site.HomeURL)
	if err != nil {
		res.Status = model.StatusError
		res.Error = err.Error()
		return res
	}

	url, err := resolver.Resolve(page, site.HomeURL, arch)
	switch {
	case errors.Is(err, resolver.ErrNotFound):
		res.Status = model.StatusNotFound
	case err != nil:
		res.Status = model.StatusError
		res.Error = err.Error()
	default:
		res.Status = model.StatusResolved
		res.URL = url
	}
	return res
}
