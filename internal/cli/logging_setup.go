package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkivimagi/auctionview/internal/config"
	"github.com/mkivimagi/auctionview/internal/logging"
)

// activeConfig holds the configuration resolved during PersistentPreRunE.
//
//nolint:gochecknoglobals // The CLI resolves configuration once per process.
var activeConfig *config.Config

func setActiveConfig(cfg *config.Config) {
	activeConfig = cfg
}

func getActiveConfig() *config.Config {
	if activeConfig == nil {
		return config.Default()
	}
	return activeConfig
}

// setupLogging configures the logger from config and CLI flags, attaches it
// to the command context, and returns a cleanup func for any log file.
func setupLogging(cmd *cobra.Command, cfg *config.Config) func() error {
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
	}

	result := logging.New(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return result.Close
}
