package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/status-im/crypto-insight/cache"
)

type Config struct {
	APIVersion  string `yaml:"api_version"`
	Environment string `yaml:"environment"`

	Server     ServerConfig    `yaml:"server"`
	Log        LogConfig       `yaml:"log"`
	Providers  ProvidersConfig `yaml:"providers"`
	Resolver   ResolverConfig  `yaml:"resolver"`
	OpenAI     OpenAIConfig    `yaml:"openai"`
	Database   DatabaseConfig  `yaml:"database"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
	PriceCache cache.Config    `yaml:"price_cache"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// RateLimitConfig limits inbound requests per client. Disabled when RedisAddr is empty.
type RateLimitConfig struct {
	RedisAddr         string `yaml:"redis_addr"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
}

// Enabled reports whether inbound rate limiting is configured
func (c RateLimitConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Server:     ServerConfig{Port: "8000"},
		Log:        LogConfig{Level: "info", Format: "text"},
		Providers:  DefaultProvidersConfig(),
		Resolver:   DefaultResolverConfig(),
		OpenAI:     DefaultOpenAIConfig(),
		Database:   DefaultDatabaseConfig(),
		RateLimit:  RateLimitConfig{RequestsPerSecond: 2},
		PriceCache: cache.DefaultCacheConfig(),
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then applies
// environment variables (including those from a .env file in the working directory).
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithField("component", "Config").Warnf("could not load .env file: %v", err)
	}

	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logrus.WithField("component", "Config").Infof("%s not found, using defaults", path)
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	config.applyEnv(os.Getenv)
	return config, nil
}

// Validate checks that every value required at startup is present
func (c *Config) Validate() error {
	var errs []error

	if c.APIVersion == "" {
		errs = append(errs, errors.New("api_version (API_VERSION) is required"))
	}
	if c.Environment == "" {
		errs = append(errs, errors.New("environment (ENVIRONMENT) is required"))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port (PORT) is required"))
	}
	if err := c.Providers.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("providers: %w", err))
	}
	if err := c.Resolver.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("resolver: %w", err))
	}
	if err := c.OpenAI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("openai: %w", err))
	}
	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if err := c.PriceCache.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("price_cache: %w", err))
	}
	if c.RateLimit.Enabled() && c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("rate_limit.requests_per_second must be positive"))
	}

	return errors.Join(errs...)
}
