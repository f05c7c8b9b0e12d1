package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
	"github.com/status-im/crypto-insight/provider_common"
)

// TokenIDResolver maps a free-text query to a CoinGecko token id using the search endpoint
type TokenIDResolver struct {
	endpoint
	maxAttempts int
	retryDelay  time.Duration
	sleep       Sleeper
	log         *logrus.Entry
}

// NewTokenIDResolver creates a resolver that retries on 429 up to cfg.MaxAttempts times
func NewTokenIDResolver(providers config.ProvidersConfig, cfg config.ResolverConfig, limiter provider_common.IRateLimiterManager) *TokenIDResolver {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &TokenIDResolver{
		endpoint:    newEndpoint(providers, limiter, metrics.ProviderCoingeckoSearch, "CoinGecko-Search"),
		maxAttempts: maxAttempts,
		retryDelay:  cfg.RetryDelay,
		sleep:       SleepContext,
		log:         logrus.WithField("component", "CoinGecko-Search"),
	}
}

// SetSleeper replaces the clock used between attempts
func (r *TokenIDResolver) SetSleeper(sleep Sleeper) {
	r.sleep = sleep
}

// ResolveTokenID returns the id of the first search hit for query.
// Errors match interfaces.ErrNotFound unless ctx was cancelled.
func (r *TokenIDResolver) ResolveTokenID(ctx context.Context, query string) (string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", interfaces.NewNotFoundError("empty search query", nil)
	}

	log := r.log.WithField("query", query)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if attempt > 1 {
			r.client.OnRetry()
			log.Debugf("waiting %s before attempt %d/%d", r.retryDelay, attempt, r.maxAttempts)
			if err := r.sleep(ctx, r.retryDelay); err != nil {
				return "", err
			}
		}

		req, err := r.request(searchPath).With("query", query).Build(ctx)
		if err != nil {
			return "", fmt.Errorf("build search request: %w", err)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", interfaces.NewNotFoundError(fmt.Sprintf("search for %q failed", query), err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			log.Warnf("rate limited on attempt %d/%d", attempt, r.maxAttempts)
			continue
		}
		if !resp.IsSuccess() {
			return "", interfaces.NewNotFoundError(fmt.Sprintf("search for %q returned status %d", query, resp.StatusCode), nil)
		}

		id := gjson.GetBytes(resp.Body, "coins.0.id").String()
		if id == "" {
			return "", interfaces.NewNotFoundError(fmt.Sprintf("no coins found for %q", query), nil)
		}

		log.WithField("token_id", id).Debug("resolved token id")
		return id, nil
	}

	return "", interfaces.NewNotFoundError(
		fmt.Sprintf("search for %q still rate limited after %d attempts", query, r.maxAttempts),
		interfaces.ErrRateLimited,
	)
}
