package cache

import (
	"time"

	"github.com/status-im/crypto-insight/interfaces"
)

// LoaderFunc produces the serialized value for a key that is not cached
type LoaderFunc func() ([]byte, error)

// Cache stores serialized upstream responses by key
type Cache interface {
	// GetOrLoad returns the cached value for key or calls loader and caches its result.
	// Loader errors are returned unchanged and nothing is cached.
	// A ttl of 0 uses the cache's default expiration.
	GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, interfaces.CacheStatus, error)

	// Get returns the cached value for key
	Get(key string) ([]byte, bool)

	// Set stores data under key with the specified TTL
	Set(key string, data []byte, ttl time.Duration)
}
