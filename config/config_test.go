package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.APIVersion = "v1"
	cfg.Environment = "test"
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Providers.MoralisAPIKey = "moralis-test"
	cfg.Database.URL = "postgres://localhost/crypto?sslmode=disable"
	return cfg
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		env         map[string]string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "file values on top of defaults",
			configYAML: `
api_version: "1.0"
environment: staging
server:
  port: "9000"
providers:
  request_timeout: 7s
  override_moralis_url: "http://localhost:1234"
resolver:
  max_attempts: 5
  retry_delay: 500ms
openai:
  model: gpt-4o
price_cache:
  go_cache:
    enabled: true
    default_expiration: 30s
    cleanup_interval: 1m
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "1.0", cfg.APIVersion)
				assert.Equal(t, "staging", cfg.Environment)
				assert.Equal(t, "9000", cfg.Server.Port)
				assert.Equal(t, 7*time.Second, cfg.Providers.RequestTimeout)
				assert.Equal(t, 5*time.Second, cfg.Providers.ConnectionTimeout)
				assert.Equal(t, "http://localhost:1234", cfg.Providers.MoralisURL())
				assert.Equal(t, 5, cfg.Resolver.MaxAttempts)
				assert.Equal(t, 500*time.Millisecond, cfg.Resolver.RetryDelay)
				assert.Equal(t, []string{"ETH", "ETHEREUM"}, cfg.Resolver.NativeSymbols)
				assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
				assert.True(t, cfg.PriceCache.GoCache.Enabled)
				assert.Equal(t, 30*time.Second, cfg.PriceCache.GoCache.DefaultExpiration)
			},
		},
		{
			name:       "environment overrides file",
			configYAML: "environment: staging\n",
			env: map[string]string{
				EnvEnvironment: "production",
				EnvOpenAIKey:   "sk-env",
				EnvMoralisKey:  "moralis-env",
				EnvDatabaseURL: "postgres://db/crypto",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
				assert.Equal(t, "moralis-env", cfg.Providers.MoralisAPIKey)
				assert.Equal(t, "postgres://db/crypto", cfg.Database.URL)
			},
		},
		{
			name:       "invalid yaml",
			configYAML: "server: [unclosed",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := createTestConfig(t, tt.configYAML)

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Resolver, cfg.Resolver)
	assert.Equal(t, defaults.OpenAI.Model, cfg.OpenAI.Model)
	assert.False(t, cfg.PriceCache.GoCache.Enabled)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvPort:             "8123",
		EnvRedisAddr:        "localhost:6379",
		EnvCoingeckoKey:     "cg-key",
		EnvCoingeckoKeyType: "pro",
		EnvAPIVersion:       "2.0",
	}

	cfg := DefaultConfig()
	cfg.applyEnv(func(name string) string { return env[name] })

	assert.Equal(t, "8123", cfg.Server.Port)
	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, "cg-key", cfg.Providers.CoingeckoAPIKey)
	assert.Equal(t, DefaultCoingeckoProURL, cfg.Providers.CoingeckoURL())
	assert.Equal(t, "2.0", cfg.APIVersion)
	// Unset variables keep their defaults
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing openai key", mutate: func(c *Config) { c.OpenAI.APIKey = "" }, errorMsg: "OPENAI_API_KEY"},
		{name: "missing moralis key", mutate: func(c *Config) { c.Providers.MoralisAPIKey = "" }, errorMsg: "MORALIS_API_KEY"},
		{name: "missing database url", mutate: func(c *Config) { c.Database.URL = "" }, errorMsg: "DATABASE_URL"},
		{name: "missing api version", mutate: func(c *Config) { c.APIVersion = "" }, errorMsg: "API_VERSION"},
		{name: "missing environment", mutate: func(c *Config) { c.Environment = "" }, errorMsg: "ENVIRONMENT"},
		{name: "zero attempts", mutate: func(c *Config) { c.Resolver.MaxAttempts = 0 }, errorMsg: "max_attempts"},
		{name: "bad key type", mutate: func(c *Config) { c.Providers.CoingeckoKeyType = "gold" }, errorMsg: "coingecko_key_type"},
		{name: "bad temperature", mutate: func(c *Config) { c.OpenAI.Temperature = 3 }, errorMsg: "temperature"},
		{
			name: "enabled price cache without ttl",
			mutate: func(c *Config) {
				c.PriceCache.GoCache.Enabled = true
				c.PriceCache.GoCache.DefaultExpiration = 0
			},
			errorMsg: "price_cache: go_cache.default_expiration",
		},
		{
			name: "rate limit without rps",
			mutate: func(c *Config) {
				c.RateLimit.RedisAddr = "localhost:6379"
				c.RateLimit.RequestsPerSecond = 0
			},
			errorMsg: "requests_per_second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestProvidersConfig_URLs(t *testing.T) {
	cfg := DefaultProvidersConfig()
	assert.Equal(t, DefaultCoingeckoPublicURL, cfg.CoingeckoURL())
	assert.Equal(t, DefaultMoralisURL, cfg.MoralisURL())
	assert.Equal(t, DefaultEthplorerURL, cfg.EthplorerURL())

	// A demo key keeps the public host
	cfg.CoingeckoAPIKey = "demo"
	cfg.CoingeckoKeyType = "demo"
	assert.Equal(t, DefaultCoingeckoPublicURL, cfg.CoingeckoURL())

	cfg.OverrideCoingeckoURL = "http://mock"
	assert.Equal(t, "http://mock", cfg.CoingeckoURL())
}
