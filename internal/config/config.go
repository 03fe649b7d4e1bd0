package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Currency CurrencyConfig `yaml:"currency"`
	Redis    RedisConfig    `yaml:"redis"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with environment override
func (c ServerConfig) GetHost() string {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// CurrencyConfig holds rate API and cache configuration
type CurrencyConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	CacheTTLHours  int    `yaml:"cache_ttl_hours"`
	// FallbackRates maps quote currencies to static units-per-EUR rates
	// used when both the rate API and the cache are unavailable.
	FallbackRates map[string]float64 `yaml:"fallback_rates"`
}

// Timeout returns the configured fetch timeout as a duration
func (c CurrencyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the rate freshness window as a duration
func (c CurrencyConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// RedisConfig holds the optional persistent rate cache configuration
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	// RetentionDays bounds how long a stale rate stays available as a
	// fetch-failure fallback. Must exceed the currency cache TTL.
	RetentionDays int `yaml:"retention_days"`
}

// Retention returns the redis entry lifetime as a duration
func (c RedisConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// Default returns the configuration used when no config file is present
// (the CLI case).
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Currency.BaseURL == "" {
		cfg.Currency.BaseURL = "https://api.exchangerate-api.com"
	}
	if cfg.Currency.TimeoutSeconds == 0 {
		cfg.Currency.TimeoutSeconds = 10
	}
	if cfg.Currency.CacheTTLHours == 0 {
		cfg.Currency.CacheTTLHours = 24
	}
	if cfg.Redis.RetentionDays == 0 {
		cfg.Redis.RetentionDays = 7
	}
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars.
// A missing config file is not an error: defaults apply, so the binaries
// run without any configuration on disk.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if os.IsNotExist(err) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if baseURL := os.Getenv("CURRENCY_BASE_URL"); baseURL != "" {
		cfg.Currency.BaseURL = baseURL
	}
	if addr := os.Getenv("REDIS_URL"); addr != "" {
		cfg.Redis.Addr = addr
		cfg.Redis.Enabled = true
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
		cfg.Redis.Enabled = true
	}

	return cfg, nil
}
