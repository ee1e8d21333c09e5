// Package cmd provides the biztime CLI commands.
package cmd

import (
	"fmt"

	"github.com/deppfellow/biztime/internal/config"
	"github.com/deppfellow/biztime/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "biztime",
	Short: "Companies and invoices API",
	Long: `biztime serves a small JSON API for companies and the invoices
issued to them, backed by PostgreSQL.

Configuration is read from BIZTIME_* environment variables and an
optional .env file.

Example:
  biztime serve
  biztime migrate
  biztime seed`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(emailPreviewCmd)
}

// loadConfig loads the configuration and builds the application logger.
// The returned LoggerService must be shut down by the caller.
func loadConfig() (*config.Config, zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if debug {
		cfg.Observability.Logging.Level = "debug"
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, log, loggerService, nil
}
