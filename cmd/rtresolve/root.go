package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beamtools/rtresolve/internal/resolver"
)

// NewRootCmd creates the root command for rtresolve. The root command is
// itself the resolve operation so that the classic one-liner works without
// naming a subcommand:
//
//	curl -s "$HOME_URL" | rtresolve --home-url "$HOME_URL" --needle-arch x86_64
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rtresolve",
		Short: "Resolve a runtime download URL from an HTML download page",
		Long: `rtresolve scans a download page for anchor elements whose link target or
text mentions "runtime" together with an architecture keyword, and prints
the first match resolved to an absolute URL.

Each input falls back from flag to environment variable, and the HTML
document additionally to standard input when piped:

  HTML document   --html         HTML          stdin
  base URL        --home-url     HOME_URL
  architecture    --needle-arch  NEEDLE_ARCH

Exit status is 0 on a match, 1 when nothing matched or on failure.

Examples:
  # Resolve from a page piped in
  curl -s https://example.org/downloads/ | \
    rtresolve --home-url https://example.org/downloads/ --needle-arch x86_64

  # Let rtresolve fetch the page itself
  rtresolve --fetch --home-url https://example.org/downloads/ --needle-arch aarch64

  # Use a site preset from .rtresolve.yaml
  rtresolve --fetch --site beam`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runResolveCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	addInputFlags(cmd)
	addFetchFlags(cmd)

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewDownloadCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and maps errors to exit codes: a missed
// match exits 1 with no output, anything else prints a diagnostic to
// stderr and exits 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runResolveCmd executes the resolve operation on the root command.
func runResolveCmd(cmd *cobra.Command, _ []string) error {
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
	if err := cfg.ValidateInputs(); err != nil {
		return err
	}
	if cfg.HTML == "" {
		if err := fetchPage(cmd.Context(), cfg); err != nil {
			return err
		}
	}

	url, err := resolver.Resolve(cfg.HTML, cfg.HomeURL, cfg.NeedleArch)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
