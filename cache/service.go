package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/status-im/crypto-insight/interfaces"
)

// Service implements Cache on top of go-cache. When disabled every call goes to the loader.
type Service struct {
	goCache *GoCache
	config  Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	var goCache *GoCache
	if config.GoCache.Enabled {
		goCache = NewGoCache(config.GoCache.DefaultExpiration, config.GoCache.CleanupInterval)
	}

	return &Service{
		goCache: goCache,
		config:  config,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.config.GoCache.Enabled && s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// Enabled reports whether values are actually cached
func (s *Service) Enabled() bool {
	return s.goCache != nil
}

// GetOrLoad implements Cache
func (s *Service) GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, interfaces.CacheStatus, error) {
	if data, ok := s.Get(key); ok {
		return data, interfaces.CacheStatusHit, nil
	}

	data, err := loader()
	if err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	s.Set(key, data, ttl)
	return data, interfaces.CacheStatusMiss, nil
}

// Get implements Cache
func (s *Service) Get(key string) ([]byte, bool) {
	if s.goCache == nil {
		return nil, false
	}
	return s.goCache.Get(key)
}

// Set implements Cache
func (s *Service) Set(key string, data []byte, ttl time.Duration) {
	if s.goCache == nil {
		return
	}
	s.goCache.Set(key, data, ttl)
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	stats := ServiceStats{Enabled: s.Enabled()}
	if s.goCache != nil {
		stats.GoCacheItems = s.goCache.ItemCount()
	}
	return stats
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	GoCacheItems int  // Number of items in go-cache
	Enabled      bool // Whether go-cache is enabled
}

// Clear removes all items from cache
func (s *Service) Clear() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}
