package provider_common

import (
	"math"
	"net/url"
	"sync"

	"golang.org/x/time/rate"

	"github.com/status-im/crypto-insight/config"
)

// IRateLimiterManager provides a way to get a rate limiter for a request URL
//
//go:generate mockgen -destination=mocks/rate_limiter_manager.go . IRateLimiterManager
type IRateLimiterManager interface {
	GetLimiterForURL(u *url.URL) *rate.Limiter
}

type limiterKey struct {
	keyType KeyType
	key     string
}

// RateLimiterManager manages per-key CoinGecko rate limiters using APIKeyConfig
type RateLimiterManager struct {
	mu           sync.RWMutex
	keyToLimiter map[limiterKey]*rate.Limiter
	config       config.APIKeyConfig
}

// Defaults in requests per minute, used when config is not provided
const (
	defaultProRPM   = 500
	defaultDemoRPM  = 30
	defaultNoKeyRPM = 30

	// A single resolution issues up to eight CoinGecko calls in a row
	defaultSharedBurst = 10
)

var coingeckoHosts = map[string]bool{
	"api.coingecko.com":     true,
	"pro-api.coingecko.com": true,
}

// NewRateLimiterManager creates a manager with the given limits
func NewRateLimiterManager(cfg config.APIKeyConfig) *RateLimiterManager {
	return &RateLimiterManager{
		keyToLimiter: make(map[limiterKey]*rate.Limiter),
		config:       cfg,
	}
}

// GetLimiterForURL inspects the URL to determine key and type and returns appropriate limiter
func (m *RateLimiterManager) GetLimiterForURL(u *url.URL) *rate.Limiter {
	if m == nil || u == nil {
		return nil
	}

	query := u.Query()

	// Prefer explicit key params
	if v := query.Get("x_cg_pro_api_key"); v != "" {
		return m.getLimiterForKey(v, ProKey)
	}
	if v := query.Get("x_cg_demo_api_key"); v != "" {
		return m.getLimiterForKey(v, DemoKey)
	}

	// Apply public limiter only for known CoinGecko hosts
	if coingeckoHosts[u.Hostname()] {
		return m.getLimiterForKey("", NoKey)
	}

	// No limiter for unrelated hosts
	return nil
}

// getLimiterForKey returns a limiter for a given api key and type, creating it if missing
func (m *RateLimiterManager) getLimiterForKey(key string, keyType KeyType) *rate.Limiter {
	mapKey := limiterKey{keyType: keyType, key: key}

	m.mu.RLock()
	if lim, ok := m.keyToLimiter[mapKey]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.keyToLimiter[mapKey]; ok {
		return lim
	}

	limiter := m.newLimiterLocked(keyType)
	m.keyToLimiter[mapKey] = limiter
	return limiter
}

func (m *RateLimiterManager) newLimiterLocked(keyType KeyType) *rate.Limiter {
	limit := m.limitForTypeLocked(keyType)
	return rate.NewLimiter(limit, m.burstForTypeLocked(keyType, limit))
}

func (m *RateLimiterManager) settingsLocked(keyType KeyType) (config.RateLimit, int) {
	switch keyType {
	case ProKey:
		return m.config.Pro, defaultProRPM
	case DemoKey:
		return m.config.Demo, defaultDemoRPM
	default:
		return m.config.NoKey, defaultNoKeyRPM
	}
}

func (m *RateLimiterManager) limitForTypeLocked(keyType KeyType) rate.Limit {
	settings, defaultRPM := m.settingsLocked(keyType)
	rpm := settings.RateLimitPerMinute
	if rpm <= 0 {
		rpm = defaultRPM
	}
	return rate.Limit(float64(rpm) / 60.0)
}

func (m *RateLimiterManager) burstForTypeLocked(keyType KeyType, limit rate.Limit) int {
	settings, _ := m.settingsLocked(keyType)
	if settings.Burst > 0 {
		return settings.Burst
	}
	if keyType == ProKey {
		return defaultBurstForLimit(limit)
	}
	return defaultSharedBurst
}

func defaultBurstForLimit(limit rate.Limit) int {
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}
