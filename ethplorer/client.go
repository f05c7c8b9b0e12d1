package ethplorer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
	"github.com/status-im/crypto-insight/provider_common"
)

const searchPath = "/search"

// Client searches Ethereum tokens by symbol or name
type Client struct {
	baseURL string
	apiKey  string
	client  *provider_common.ProviderClient
	log     *logrus.Entry
}

func NewClient(cfg config.ProvidersConfig) *Client {
	opts := provider_common.ClientOptions{
		LogPrefix:         "Ethplorer",
		ConnectionTimeout: cfg.ConnectionTimeout,
		RequestTimeout:    cfg.RequestTimeout,
	}
	return &Client{
		baseURL: cfg.EthplorerURL(),
		apiKey:  cfg.EthplorerAPIKey,
		client:  provider_common.NewProviderClient(opts, metrics.NewMetricsWriter(metrics.ProviderEthplorer), nil),
		log:     logrus.WithField("component", "Ethplorer"),
	}
}

// Search returns the address of the first token matching symbol.
// Errors match interfaces.ErrNotFound unless ctx was cancelled.
func (c *Client) Search(ctx context.Context, symbol string) (string, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return "", interfaces.NewNotFoundError("empty search query", nil)
	}

	req, err := provider_common.NewRequestBuilder(c.baseURL, searchPath).
		With("query", symbol).
		With("apiKey", c.apiKey).
		Build(ctx)
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", interfaces.NewNotFoundError(fmt.Sprintf("ethplorer search for %q failed", symbol), err)
	}
	if !resp.IsSuccess() {
		return "", interfaces.NewNotFoundError(fmt.Sprintf("ethplorer search for %q returned status %d", symbol, resp.StatusCode), nil)
	}

	address := strings.TrimSpace(gjson.GetBytes(resp.Body, "tokens.0.address").String())
	if address == "" {
		return "", interfaces.NewNotFoundError(fmt.Sprintf("ethplorer has no token for %q", symbol), nil)
	}

	c.log.WithFields(logrus.Fields{"symbol": symbol, "address": address}).Debug("fallback search hit")
	return address, nil
}
