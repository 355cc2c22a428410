package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/beamtools/rtresolve/internal/model"
	"github.com/beamtools/rtresolve/internal/resolver"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Resolve a runtime URL and download the archive",
		Long: `Download resolves the runtime URL exactly like the root command and then
saves the archive to disk. The page is fetched from the base URL when no
HTML was supplied by flag, environment, or stdin.

The output name defaults to the final path element of the resolved URL.
An existing file is never overwritten.

Examples:
  # Download the x86_64 runtime into the current directory
  rtresolve download --home-url https://example.org/downloads/ --needle-arch x86_64

  # Download a preset to an explicit path
  rtresolve download --site beam -o /tmp/runtime.tar.gz`,
		RunE: runDownloadCmd,
	}

	addInputFlags(cmd)
	addFetchFlags(cmd)
	cmd.Flags().StringP("output", "o", "",
		"Output file path (default: archive name from the resolved URL)")

	return cmd
}

// runDownloadCmd executes the download command.
func runDownloadCmd(cmd *cobra.Command, _ []string) error {
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

	// Downloading implies fetching: without page input there is nothing
	// to scan, and requiring --fetch here would only add ceremony.
	cfg.Fetch = true
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

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = model.Candidate{URL: url}.FileName()
		if output == "" {
			return fmt.Errorf("cannot derive a file name from %s, use --output", url)
		}
	}
	if _, err := os.Stat(output); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s already exists", output)
	}

	file, err := os.Create(output) //nolint:gosec // User-chosen output path is intentional
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	n, err := newFetcher(cfg).Download(cmd.Context(), url, file)
	if cerr := file.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close %s: %w", output, cerr)
	}
	if err != nil {
		os.Remove(output)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d bytes) from %s\n", output, n, url)
	return nil
}
