package moralis

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
	"github.com/status-im/crypto-insight/provider_common"
)

const apiKeyHeader = "X-API-Key"

// Client fetches ERC20 token prices from the Moralis deep index API
type Client struct {
	baseURL string
	apiKey  string
	client  *provider_common.ProviderClient
	log     *logrus.Entry
}

func NewClient(cfg config.ProvidersConfig) *Client {
	opts := provider_common.ClientOptions{
		LogPrefix:         "Moralis",
		ConnectionTimeout: cfg.ConnectionTimeout,
		RequestTimeout:    cfg.RequestTimeout,
	}
	return &Client{
		baseURL: cfg.MoralisURL(),
		apiKey:  cfg.MoralisAPIKey,
		client:  provider_common.NewProviderClient(opts, metrics.NewMetricsWriter(metrics.ProviderMoralis), nil),
		log:     logrus.WithField("component", "Moralis"),
	}
}

// TokenPrice returns the raw price payload for the token at address.
// Non-2xx answers become KindUpstreamHTTP errors carrying status and body; nothing is retried.
func (c *Client) TokenPrice(ctx context.Context, address string, chain interfaces.Chain) ([]byte, error) {
	req, err := provider_common.NewRequestBuilder(c.baseURL, "/api/v2.2/erc20/"+url.PathEscape(address)+"/price").
		With("chain", chain.String()).
		WithHeader(apiKeyHeader, c.apiKey).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build price request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &interfaces.ResultError{
			Kind:    interfaces.KindUpstreamHTTP,
			Message: "Moralis API request failed",
			Err:     err,
		}
	}

	if !resp.IsSuccess() {
		c.log.WithFields(logrus.Fields{"address": address, "chain": chain, "status": resp.StatusCode}).Warn("price request rejected")
		return nil, interfaces.NewUpstreamHTTPError(
			fmt.Sprintf("Moralis API error: status %d", resp.StatusCode), resp.StatusCode, resp.Body)
	}

	return resp.Body, nil
}
