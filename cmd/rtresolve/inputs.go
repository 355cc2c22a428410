package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beamtools/rtresolve/internal/config"
	"github.com/beamtools/rtresolve/internal/fetch"
	"github.com/beamtools/rtresolve/internal/report"
)

// addInputFlags registers the resolver input flags shared by the root,
// list, and download commands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("html", "",
		"HTML document to scan (fallback: HTML environment variable, then stdin)")
	cmd.Flags().String("home-url", "",
		"Base URL for resolving relative links (fallback: HOME_URL environment variable)")
	cmd.Flags().String("needle-arch", "",
		"Architecture keyword to search for (fallback: NEEDLE_ARCH environment variable)")
	cmd.Flags().StringP("site", "s", "",
		"Site preset from the configuration file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .rtresolve.yaml in cwd, XDG config dir, or home)")
}

// addFetchFlags registers the HTTP flags for commands that may retrieve
// the page themselves.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fetch", false,
		"Fetch the page from the base URL when no HTML was supplied")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout per HTTP request")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header for HTTP requests")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum number of page bytes to read")
}

// buildConfig creates a Config from the command's flags and installs the
// logger. Flags a command did not register stay at their defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	flags := cmd.Flags()
	stringFlag := func(name string, dst *string) {
		if flags.Lookup(name) != nil {
			v, _ := flags.GetString(name)
			*dst = v
		}
	}

	stringFlag("html", &cfg.HTML)
	if cfg.HTML != "" {
		cfg.HTMLSource = "flag"
	}
	stringFlag("home-url", &cfg.HomeURL)
	stringFlag("needle-arch", &cfg.NeedleArch)
	stringFlag("site", &cfg.Site)
	stringFlag("config", &cfg.ConfigPath)

	var userAgent string
	stringFlag("user-agent", &userAgent)
	if userAgent != "" {
		cfg.UserAgent = userAgent
	}
	if flags.Lookup("fetch") != nil {
		cfg.Fetch, _ = flags.GetBool("fetch")
	}
	if flags.Lookup("timeout") != nil {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Lookup("max-body-size") != nil {
		cfg.MaxBodySize, _ = flags.GetInt64("max-body-size")
	}
	if flags.Lookup("workers") != nil {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Lookup("json") != nil {
		cfg.JSON, _ = flags.GetBool("json")
	}
	if flags.Lookup("markdown") != nil {
		cfg.Markdown, _ = flags.GetBool("markdown")
	}

	slog.SetDefault(setupLogger(getVerboseFlag(cmd)))
	return cfg, nil
}

// materializeInputs applies the input precedence: explicit flags (already
// in cfg) win, then environment variables, then the site preset, then
// piped standard input for the HTML document.
func materializeInputs(cfg *config.Config) error {
	cfg.FromEnvironment()

	if cfg.Site != "" {
		site, err := lookupSite(cfg)
		if err != nil {
			return err
		}
		cfg.FromSite(site)
	}

	if cfg.HTML == "" && stdinIsPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read standard input: %w", err)
		}
		if len(data) > 0 {
			cfg.HTML = string(data)
			cfg.HTMLSource = "stdin"
		}
	}
	return nil
}

// lookupSite loads the configuration file and returns the named preset.
func lookupSite(cfg *config.Config) (config.SiteConfig, error) {
	path := config.FindConfigFile(cfg.ConfigPath)
	if path == "" {
		return config.SiteConfig{}, fmt.Errorf("site %q: %w", cfg.Site, config.ErrConfigNotFound)
	}
	cf, err := config.LoadConfigFile(path)
	if err != nil {
		return config.SiteConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	site, ok := cf.Lookup(cfg.Site)
	if !ok {
		return config.SiteConfig{}, fmt.Errorf("site %q: %w", cfg.Site, config.ErrUnknownSite)
	}
	slog.Debug("applied site preset", "site", cfg.Site, "config", path)
	return site, nil
}

// fetchPage retrieves the page from the home URL into cfg.HTML.
func fetchPage(ctx context.Context, cfg *config.Config) error {
	f := newFetcher(cfg)
	body, err := f.Fetch(ctx, cfg.HomeURL)
	if err != nil {
		return err
	}
	cfg.HTML = body
	cfg.HTMLSource = cfg.HomeURL
	return nil
}

// newFetcher builds a Fetcher from the HTTP settings in cfg.
func newFetcher(cfg *config.Config) *fetch.Fetcher {
	return fetch.NewFetcher(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithHeaders(cfg.Headers),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)
}

// stdinIsPiped reports whether standard input carries piped data rather
// than an interactive terminal.
func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger configures slog: warnings only by default, debug when
// verbose. Logs go to stderr so stdout stays a clean single-URL surface
// for scripts.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// reportFormat maps the mutually exclusive format flags to a report format.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSON:
		return report.FormatJSON
	case cfg.Markdown:
		return report.FormatMarkdown
	default:
		return report.FormatPlain
	}
}

// sourceLabel describes where the HTML came from for reports.
func sourceLabel(cfg *config.Config) string {
	if cfg.HTMLSource == "" {
		return "inline"
	}
	return cfg.HTMLSource
}
