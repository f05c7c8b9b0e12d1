package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache simple in-memory cache implementation using go-cache
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns the bytes stored under key
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// Set stores a value with the given timeout.
// If timeout is 0, uses cache's default expiration.
func (gc *GoCache) Set(key string, data []byte, timeout time.Duration) {
	gc.cache.Set(key, data, timeout)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount includes expired items the janitor has not evicted yet
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
