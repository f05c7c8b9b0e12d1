package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultCoingeckoPublicURL = "https://api.coingecko.com"
	DefaultCoingeckoProURL    = "https://pro-api.coingecko.com"
	DefaultMoralisURL         = "https://deep-index.moralis.io"
	DefaultEthplorerURL       = "https://api.ethplorer.io"
	DefaultEthplorerAPIKey    = "freekey"
)

// ProvidersConfig configures the upstream data providers
type ProvidersConfig struct {
	// Base URL overrides, mostly used by tests
	OverrideCoingeckoURL string `yaml:"override_coingecko_url"`
	OverrideMoralisURL   string `yaml:"override_moralis_url"`
	OverrideEthplorerURL string `yaml:"override_ethplorer_url"`

	// CoingeckoAPIKey is optional; CoingeckoKeyType is "pro" or "demo"
	CoingeckoAPIKey  string `yaml:"-"`
	CoingeckoKeyType string `yaml:"coingecko_key_type"`
	MoralisAPIKey    string `yaml:"-"`
	EthplorerAPIKey  string `yaml:"ethplorer_api_key"`

	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`

	CoingeckoRateLimits APIKeyConfig `yaml:"coingecko_rate_limits"`
}

// APIKeyConfig configures rate limiting per CoinGecko key type
type APIKeyConfig struct {
	// Requests per minute and burst per type. If zero, defaults are used.
	Pro   RateLimit `yaml:"pro"`
	Demo  RateLimit `yaml:"demo"`
	NoKey RateLimit `yaml:"nokey"`
}

// RateLimit represents a simple rpm + burst pair
type RateLimit struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

func DefaultProvidersConfig() ProvidersConfig {
	return ProvidersConfig{
		EthplorerAPIKey:   DefaultEthplorerAPIKey,
		ConnectionTimeout: 5 * time.Second,
		RequestTimeout:    10 * time.Second,
	}
}

// CoingeckoURL returns the CoinGecko base URL for the configured key type
func (c ProvidersConfig) CoingeckoURL() string {
	if c.OverrideCoingeckoURL != "" {
		return c.OverrideCoingeckoURL
	}
	if c.CoingeckoAPIKey != "" && c.CoingeckoKeyType == "pro" {
		return DefaultCoingeckoProURL
	}
	return DefaultCoingeckoPublicURL
}

func (c ProvidersConfig) MoralisURL() string {
	if c.OverrideMoralisURL != "" {
		return c.OverrideMoralisURL
	}
	return DefaultMoralisURL
}

func (c ProvidersConfig) EthplorerURL() string {
	if c.OverrideEthplorerURL != "" {
		return c.OverrideEthplorerURL
	}
	return DefaultEthplorerURL
}

func (c ProvidersConfig) Validate() error {
	var errs []error
	if c.MoralisAPIKey == "" {
		errs = append(errs, errors.New("moralis api key (MORALIS_API_KEY) is required"))
	}
	switch c.CoingeckoKeyType {
	case "", "pro", "demo":
	default:
		errs = append(errs, fmt.Errorf("coingecko_key_type must be \"pro\" or \"demo\", got %q", c.CoingeckoKeyType))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request_timeout must be positive"))
	}
	if c.ConnectionTimeout <= 0 {
		errs = append(errs, errors.New("connection_timeout must be positive"))
	}
	return errors.Join(errs...)
}
