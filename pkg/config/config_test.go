package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "missing config file uses defaults",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 8080, viper.GetInt("server.port"))
				assert.Equal(t, "https://api.search.brave.com/res/v1", viper.GetString("brave.base_url"))
				assert.Equal(t, 10*time.Second, viper.GetDuration("brave.timeout"))
				assert.Equal(t, 0, viper.GetInt("brave.retry_attempts"))
				assert.Empty(t, viper.GetString("brave.api_key"))
			},
		},
		{
			name: "values from config file",
			path: func(t *testing.T) string {
				return writeSettings(t, `
server:
  host: "127.0.0.1"
  port: 9000
brave:
  timeout: 3s
  retry_attempts: 2
`)
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9000, viper.GetInt("server.port"))
				assert.Equal(t, "127.0.0.1", viper.GetString("server.host"))
				assert.Equal(t, 3*time.Second, viper.GetDuration("brave.timeout"))
				assert.Equal(t, 2, viper.GetInt("brave.retry_attempts"))
			},
		},
		{
			name: "environment variable override",
			path: func(t *testing.T) string {
				return writeSettings(t, "server:\n  port: 8080\n")
			},
			env: map[string]string{"SEARCH_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, viper.GetInt("server.port"))
			},
		},
		{
			name: "legacy credential variable",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			env: map[string]string{LegacyAPIKeyEnv: "legacy-token"},
			check: func(t *testing.T) {
				assert.Equal(t, "legacy-token", viper.GetString("brave.api_key"))
			},
		},
		{
			name: "prefixed credential variable",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			env: map[string]string{"SEARCH_BRAVE_API_KEY": "prefixed-token"},
			check: func(t *testing.T) {
				cfg, err := GetConfig()
				require.NoError(t, err)
				assert.Equal(t, "prefixed-token", cfg.Brave.APIKey)
			},
		},
		{
			name: "invalid port",
			path: func(t *testing.T) string {
				return writeSettings(t, "server:\n  port: 70000\n")
			},
			wantErr: true,
		},
		{
			name: "malformed config file",
			path: func(t *testing.T) string {
				return writeSettings(t, "server: [port\n")
			},
			wantErr: true,
		},
		{
			name: "non-positive rate limits are corrected",
			path: func(t *testing.T) string {
				return writeSettings(t, "rate_limiting:\n  search_rps: 0\n  search_burst: -1\n")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 5, viper.GetInt("rate_limiting.search_rps"))
				assert.Equal(t, 10, viper.GetInt("rate_limiting.search_burst"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			t.Setenv(LegacyAPIKeyEnv, "")
			t.Setenv("SEARCH_BRAVE_API_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := load(tt.path(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	require.NoError(t, load(filepath.Join(t.TempDir(), "absent.yaml")))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "SearchGateway/1.0", cfg.Brave.UserAgent)
	assert.True(t, cfg.RateLimiting.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
	assert.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:   "valid config",
			config: &Config{Server: ServerConfig{Host: "localhost", Port: 8080}},
		},
		{
			name:    "invalid port",
			config:  &Config{Server: ServerConfig{Host: "localhost", Port: 0}},
			wantErr: true,
		},
		{
			name: "negative timeout",
			config: &Config{
				Server: ServerConfig{Port: 8080},
				Brave:  BraveConfig{Timeout: -time.Second},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCorrectsDefaults(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Brave:  BraveConfig{RetryAttempts: -3},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Brave.RetryAttempts)
	assert.Equal(t, 5, cfg.RateLimiting.SearchRPS)
	assert.Equal(t, 10, cfg.RateLimiting.SearchBurst)
	assert.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
}
