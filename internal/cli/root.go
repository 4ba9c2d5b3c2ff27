// Package cli wires the auctionview command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mkivimagi/auctionview/internal/config"
)

// logger is the package-level logger for CLI operations.
//
//nolint:gochecknoglobals // Set once during command setup.
var logger zerolog.Logger

// NewRootCmd creates the root cobra command for the auctionview CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logCleanup func() error

	cmd := &cobra.Command{
		Use:     "auctionview",
		Short:   "Browse paginated auction results from the terminal",
		Long:    "auctionview fetches server-paginated auction result pages and renders them as an interactive table.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logCleanup = setupLogging(cmd, cfg)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCleanup != nil {
				return logCleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("endpoint", "", "auction service base URL (overrides config)")
	cmd.PersistentFlags().Int("timeout", 0, "request timeout in seconds (overrides config)")
	cmd.PersistentFlags().String("config", "", "path to config file")

	cmd.AddCommand(newBrowseCmd(), newListCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse auction results interactively
  auctionview browse

  # Print page 3 as a plain table
  auctionview list --page 3

  # Sort the fetched page by max price, descending
  auctionview list --page 1 --sort maxPrice:desc

  # Emit one page as JSON
  auctionview list --output json

  # Write the default config file
  auctionview config init`

// Execute runs the root command and exits non-zero on error.
func Execute(ver string) {
	if err := NewRootCmd(ver).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file path, loads it, and applies flag
// overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if timeout, _ := cmd.Flags().GetInt("timeout"); timeout > 0 {
		cfg.TimeoutSeconds = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	setActiveConfig(cfg)
	return cfg, nil
}
