package coingecko

import (
	"context"
	"time"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/metrics"
	"github.com/status-im/crypto-insight/provider_common"
)

const (
	searchPath = "/api/v3/search"
	coinsPath  = "/api/v3/coins/"
)

// Sleeper pauses for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the real-clock Sleeper
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// endpoint holds what every CoinGecko request needs
type endpoint struct {
	baseURL string
	apiKey  string
	keyType provider_common.KeyType
	client  *provider_common.ProviderClient
}

func newEndpoint(cfg config.ProvidersConfig, limiter provider_common.IRateLimiterManager, provider, logPrefix string) endpoint {
	opts := provider_common.ClientOptions{
		LogPrefix:         logPrefix,
		ConnectionTimeout: cfg.ConnectionTimeout,
		RequestTimeout:    cfg.RequestTimeout,
	}
	return endpoint{
		baseURL: cfg.CoingeckoURL(),
		apiKey:  cfg.CoingeckoAPIKey,
		keyType: provider_common.ParseKeyType(cfg.CoingeckoAPIKey, cfg.CoingeckoKeyType),
		client:  provider_common.NewProviderClient(opts, metrics.NewMetricsWriter(provider), limiter),
	}
}

func (e endpoint) request(path string) *provider_common.RequestBuilder {
	return provider_common.NewRequestBuilder(e.baseURL, path).WithCoingeckoKey(e.apiKey, e.keyType)
}
