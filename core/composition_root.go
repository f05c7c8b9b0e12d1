package core

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/status-im/crypto-insight/api"
	"github.com/status-im/crypto-insight/cache"
	"github.com/status-im/crypto-insight/coingecko"
	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/contracts"
	"github.com/status-im/crypto-insight/ethplorer"
	"github.com/status-im/crypto-insight/logging"
	"github.com/status-im/crypto-insight/market_data"
	"github.com/status-im/crypto-insight/moralis"
	"github.com/status-im/crypto-insight/openai_chat"
	"github.com/status-im/crypto-insight/provider_common"
	"github.com/status-im/crypto-insight/ratelimit"
	"github.com/status-im/crypto-insight/reports"
)

// Setup opens the report database and creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	db, err := reports.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	registry, err := SetupWithDB(ctx, cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return registry, nil
}

// SetupWithDB creates and registers all services around an open report database.
// The registry takes ownership of db and closes it on StopAll.
func SetupWithDB(ctx context.Context, cfg *config.Config, db *sql.DB) (*Registry, error) {
	log := logging.Component(nil, "Core")
	registry := NewRegistry()

	// Report store first so the schema exists before the server accepts requests
	store := reports.NewPostgresStore(db)
	registry.Register(store)

	// Price cache, off unless price_cache.go_cache.enabled
	cacheService := cache.NewService(cfg.PriceCache)
	registry.Register(cacheService)

	// CoinGecko clients share one limiter manager so search and coins throttle per host
	limiterManager := provider_common.NewRateLimiterManager(cfg.Providers.CoingeckoRateLimits)
	tokenIDResolver := coingecko.NewTokenIDResolver(cfg.Providers, cfg.Resolver, limiterManager)
	contractResolver := coingecko.NewContractResolver(cfg.Providers, limiterManager)
	fallbackSearcher := ethplorer.NewClient(cfg.Providers)

	resolver := contracts.NewResolver(cfg.Resolver, tokenIDResolver, contractResolver, fallbackSearcher)
	marketService := market_data.NewService(resolver, moralis.NewClient(cfg.Providers), cacheService, cfg.PriceCache.PriceTTL())

	openaiClient := openai_chat.NewClient(cfg.OpenAI, cfg.Providers)
	synthesizer := reports.NewSynthesizer(marketService, openaiClient)

	server := api.New(cfg.Server.Port, api.Info{APIVersion: cfg.APIVersion, Environment: cfg.Environment},
		marketService, synthesizer, store, openaiClient)
	server.SetPriceCache(cacheService)

	if cfg.RateLimit.Enabled() {
		limiter, err := ratelimit.NewLimiter(ctx, cfg.RateLimit.RedisAddr, cfg.RateLimit.RequestsPerSecond)
		if err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
		registry.Register(limiter)
		server.SetRateLimiter(limiter)
		log.Infof("Inbound rate limit: %d requests per second per client", cfg.RateLimit.RequestsPerSecond)
	} else {
		log.Info("Inbound rate limit disabled, REDIS_ADDR not set")
	}

	// HTTP server last so it stops first
	registry.Register(server)

	return registry, nil
}
