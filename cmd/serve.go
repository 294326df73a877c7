package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/search-gateway/api"
	"github.com/killallgit/search-gateway/api/types"
	"github.com/killallgit/search-gateway/internal/services/brave"
	"github.com/killallgit/search-gateway/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Search Gateway server with the configured settings.

The provider credential is read from BRAVE_SEARCH_API_KEY (or
SEARCH_BRAVE_API_KEY). Without it the server still starts, and search
requests fail with a configuration error.

Example:
  search-gateway serve
  search-gateway serve --port 9090
  search-gateway serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

// newDependencies builds handler dependencies from configuration
func newDependencies(cfg *config.Config) *types.Dependencies {
	client := brave.NewClient(brave.Config{
		BaseURL:       cfg.Brave.BaseURL,
		UserAgent:     cfg.Brave.UserAgent,
		Timeout:       cfg.Brave.Timeout,
		RetryAttempts: cfg.Brave.RetryAttempts,
		RetryWait:     cfg.Brave.RetryWait,
	})

	if cfg.Brave.APIKey == "" {
		log.Warn().Msg(config.LegacyAPIKeyEnv + " is not configured; search requests will fail")
	}

	return &types.Dependencies{
		SearchClient:       client,
		ProviderCredential: cfg.Brave.APIKey,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := *appConfig
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}

	server := api.NewServer(&cfg, newDependencies(&cfg))
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Info().
		Str("addr", server.Addr()).
		Str("environment", cfg.Environment).
		Msg("search gateway listening")

	var runErr error
	select {
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case <-cmd.Context().Done():
		log.Info().Msg("context cancelled, shutting down server")
	case runErr = <-serverErr:
		log.Error().Err(runErr).Msg("server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server gracefully stopped")
	return runErr
}
