package cache

import (
	"errors"
	"time"
)

// Config controls the price response cache
type Config struct {
	GoCache GoCacheConfig `yaml:"go_cache"`
}

// GoCacheConfig configures the in-memory go-cache store
type GoCacheConfig struct {
	// Enabled turns caching on. When off every lookup calls the loader.
	Enabled bool `yaml:"enabled"`

	// DefaultExpiration is the TTL of a cached price payload
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval is how often go-cache evicts expired payloads
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultCacheConfig returns the price cache defaults: off, with a short TTL
// for deployments that turn it on
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			Enabled:           false,
			DefaultExpiration: 30 * time.Second,
			CleanupInterval:   time.Minute,
		},
	}
}

// PriceTTL is how long a price payload stays cached
func (c Config) PriceTTL() time.Duration {
	return c.GoCache.DefaultExpiration
}

// Validate rejects an enabled cache whose entries would never expire
func (c Config) Validate() error {
	if !c.GoCache.Enabled {
		return nil
	}
	if c.GoCache.DefaultExpiration <= 0 {
		return errors.New("go_cache.default_expiration must be positive when enabled")
	}
	if c.GoCache.CleanupInterval <= 0 {
		return errors.New("go_cache.cleanup_interval must be positive when enabled")
	}
	return nil
}
