package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/search-gateway/pkg/config"
	"github.com/killallgit/search-gateway/pkg/logger"
)

// appConfig is populated by loadConfig before any command that needs it runs
var appConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "search-gateway",
	Short: "Search Gateway server",
	Long: `Search Gateway - a provider-agnostic web and image search API

The gateway accepts GET /api/search?q=<query>&type=<web|images>, forwards the
query to the Brave Search API and returns results in a stable JSON contract.

Features:
  • Web and image search through a single endpoint
  • Query suggestions
  • Per-client rate limiting
  • Prometheus metrics and Swagger documentation`,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// prepare loads configuration and sets up logging. The version command
// needs neither.
func prepare(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	if err := loadConfig(); err != nil {
		return err
	}

	return setupLogging(cmd)
}

// loadConfig initializes the configuration and caches the decoded struct
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appConfig = cfg
	return nil
}

// setupLogging applies flag overrides on top of the logging config
func setupLogging(cmd *cobra.Command) error {
	level := appConfig.Logging.Level
	if f := cmd.Flags().Lookup("log-level"); f != nil && (f.Changed || level == "") {
		level = f.Value.String()
	}

	format := appConfig.Logging.Format
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		format = "json"
	}
	if format == "" {
		format = "console"
	}

	if _, err := logger.New(level, format); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	log.Debug().
		Str("environment", appConfig.Environment).
		Str("level", level).
		Str("format", format).
		Msg("logging configured")
	return nil
}
