package market_data

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/status-im/crypto-insight/cache"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
)

// Service aggregates price and metadata for a symbol: it resolves the contract
// address, fetches one pricing payload and normalizes it.
type Service struct {
	resolver interfaces.IContractResolver
	prices   interfaces.IPriceSource
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logrus.Entry
}

// NewService creates the aggregator. priceCache may be nil.
func NewService(resolver interfaces.IContractResolver, prices interfaces.IPriceSource, priceCache cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{
		resolver: resolver,
		prices:   prices,
		cache:    priceCache,
		cacheTTL: cacheTTL,
		log:      logrus.WithField("component", "MarketData"),
	}
}

// GetPrice implements interfaces.IMarketDataService
func (s *Service) GetPrice(ctx context.Context, symbol string, chain interfaces.Chain) (*interfaces.PriceRecord, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	body, status, err := s.fetch(ctx, symbol, chain)
	if err != nil {
		return nil, err
	}

	record, err := parsePrice(symbol, chain, body)
	if err != nil {
		return nil, err
	}
	record.CacheStatus = status
	return record, nil
}

// GetMetadata implements interfaces.IMarketDataService
func (s *Service) GetMetadata(ctx context.Context, symbol string, chain interfaces.Chain) (*interfaces.MetadataRecord, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	body, _, err := s.fetch(ctx, symbol, chain)
	if err != nil {
		return nil, err
	}

	return parseMetadata(body)
}

// fetch resolves the contract and returns the pricing payload, from the cache when possible
func (s *Service) fetch(ctx context.Context, symbol string, chain interfaces.Chain) ([]byte, interfaces.CacheStatus, error) {
	address, err := s.resolver.Resolve(ctx, symbol, chain)
	if err != nil {
		return nil, "", unresolvedError(ctx, symbol, err)
	}
	if address == "" {
		return nil, "", unresolvedError(ctx, symbol, interfaces.ErrNotFound)
	}

	log := s.log.WithFields(logrus.Fields{"symbol": symbol, "chain": chain, "address": address})
	// Only payloads that parse are handed to the cache
	load := func() ([]byte, error) {
		log.Debug("fetching price")
		body, err := s.prices.TokenPrice(ctx, address, chain)
		if err != nil {
			return nil, err
		}
		if err := validPayload(body); err != nil {
			return nil, err
		}
		return body, nil
	}

	if s.cache == nil {
		body, err := load()
		return body, interfaces.CacheStatusMiss, err
	}

	body, status, err := s.cache.GetOrLoad(priceCacheKey(address, chain), load, s.cacheTTL)
	if err == nil {
		metrics.RecordPriceCacheLookup(status.String())
	}
	return body, status, err
}

func priceCacheKey(address string, chain interfaces.Chain) string {
	return "price:" + chain.String() + ":" + strings.ToLower(address)
}

// unresolvedError keeps cancellation as is and turns everything else into a
// not found or unsupported asset error
func unresolvedError(ctx context.Context, symbol string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	kind := interfaces.KindNotFound
	if errors.Is(err, interfaces.ErrUnsupportedAsset) {
		kind = interfaces.KindUnsupportedAsset
	}
	return &interfaces.ResultError{
		Kind:    kind,
		Message: fmt.Sprintf("contract address not found for %s", symbol),
		Err:     err,
	}
}

func validPayload(body []byte) error {
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return interfaces.NewPayloadError("invalid JSON from pricing provider", body, nil)
	}
	return nil
}
