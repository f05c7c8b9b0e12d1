package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
	"github.com/status-im/crypto-insight/provider_common"
)

// ContractResolver reads a token's contract address for a chain from the coin detail endpoint
type ContractResolver struct {
	endpoint
	log *logrus.Entry
}

func NewContractResolver(providers config.ProvidersConfig, limiter provider_common.IRateLimiterManager) *ContractResolver {
	return &ContractResolver{
		endpoint: newEndpoint(providers, limiter, metrics.ProviderCoingeckoCoins, "CoinGecko-Coins"),
		log:      logrus.WithField("component", "CoinGecko-Coins"),
	}
}

// ResolveContract returns platforms[chain.PlatformKey()] of the coin.
// An empty tokenID is answered without a network call.
func (r *ContractResolver) ResolveContract(ctx context.Context, tokenID string, chain interfaces.Chain) (string, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return "", interfaces.NewNotFoundError("empty token id", nil)
	}

	req, err := r.request(coinsPath+url.PathEscape(tokenID)).
		With("localization", "false").
		With("tickers", "false").
		With("market_data", "false").
		With("community_data", "false").
		With("developer_data", "false").
		Build(ctx)
	if err != nil {
		return "", fmt.Errorf("build coin request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", interfaces.NewNotFoundError(fmt.Sprintf("coin %q lookup failed", tokenID), err)
	}
	if !resp.IsSuccess() {
		return "", interfaces.NewNotFoundError(fmt.Sprintf("coin %q returned status %d", tokenID, resp.StatusCode), nil)
	}

	platform := chain.PlatformKey()
	address := strings.TrimSpace(gjson.GetBytes(resp.Body, "platforms."+gjson.Escape(platform)).String())
	if address == "" {
		return "", interfaces.NewNotFoundError(fmt.Sprintf("coin %q has no %s contract", tokenID, platform), nil)
	}

	r.log.WithFields(logrus.Fields{"token_id": tokenID, "platform": platform}).Debug("resolved contract")
	return address, nil
}
