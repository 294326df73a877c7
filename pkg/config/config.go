package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SEARCH_SERVER_PORT
const EnvPrefix = "SEARCH"

// LegacyAPIKeyEnv is the provider credential variable used by existing deployments
const LegacyAPIKeyEnv = "BRAVE_SEARCH_API_KEY"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load("./config/settings.yaml")
	})
	return initErr
}

// Reset clears loaded state so Init can run again (for testing)
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

func load(path string) error {
	// A missing .env file is the normal case outside local development
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("brave.api_key", EnvPrefix+"_BRAVE_API_KEY", LegacyAPIKeyEnv); err != nil {
		return fmt.Errorf("binding %s: %w", LegacyAPIKeyEnv, err)
	}

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// validate checks values read through viper. An absent provider credential
// is not an error here; the search route reports it per request.
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetInt("brave.retry_attempts") < 0 {
		viper.Set("brave.retry_attempts", 0)
	}

	if viper.GetInt("rate_limiting.search_rps") <= 0 {
		viper.Set("rate_limiting.search_rps", 5)
	}
	if viper.GetInt("rate_limiting.search_burst") <= 0 {
		viper.Set("rate_limiting.search_burst", 10)
	}
	if !strings.HasPrefix(viper.GetString("monitoring.metrics_path"), "/") {
		viper.Set("monitoring.metrics_path", "/metrics")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Brave.Timeout < 0 {
		return fmt.Errorf("invalid brave timeout: %s", c.Brave.Timeout)
	}
	if c.Brave.RetryAttempts < 0 {
		c.Brave.RetryAttempts = 0
	}
	if c.RateLimiting.SearchRPS <= 0 {
		c.RateLimiting.SearchRPS = 5
	}
	if c.RateLimiting.SearchBurst <= 0 {
		c.RateLimiting.SearchBurst = 10
	}
	if !strings.HasPrefix(c.Monitoring.MetricsPath, "/") {
		c.Monitoring.MetricsPath = "/metrics"
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Brave Search defaults
	viper.SetDefault("brave.base_url", "https://api.search.brave.com/res/v1")
	viper.SetDefault("brave.timeout", 10*time.Second)
	viper.SetDefault("brave.retry_attempts", 0)
	viper.SetDefault("brave.retry_wait", 250*time.Millisecond)
	viper.SetDefault("brave.user_agent", "SearchGateway/1.0")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}
