package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "https://api.exchangerate-api.com", cfg.Currency.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Currency.Timeout())
	assert.Equal(t, 24*time.Hour, cfg.Currency.CacheTTL())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.Retention())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  host: 0.0.0.0
currency:
  base_url: https://rates.example.com
  cache_ttl_hours: 6
  fallback_rates:
    CZK: 24.5
redis:
  enabled: true
  addr: redis.example.com:6379
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "https://rates.example.com", cfg.Currency.BaseURL)
	assert.Equal(t, 6*time.Hour, cfg.Currency.CacheTTL())
	assert.Equal(t, 24.5, cfg.Currency.FallbackRates["CZK"])
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.example.com:6379", cfg.Redis.Addr)

	// Unset fields still get defaults.
	assert.Equal(t, 10, cfg.Currency.TimeoutSeconds)
	assert.Equal(t, 7, cfg.Redis.RetentionDays)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromEnv_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("CURRENCY_BASE_URL", "https://override.example.com")
	t.Setenv("REDIS_ADDR", "localhost:6380")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://override.example.com", cfg.Currency.BaseURL)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.True(t, cfg.Redis.Enabled, "REDIS_ADDR implies the redis cache is wanted")
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := LoadFromEnv(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestServerConfig_GetHost(t *testing.T) {
	cfg := ServerConfig{Host: "localhost"}
	assert.Equal(t, "localhost", cfg.GetHost())

	t.Setenv("SERVER_HOST", "0.0.0.0")
	assert.Equal(t, "0.0.0.0", cfg.GetHost())
}
