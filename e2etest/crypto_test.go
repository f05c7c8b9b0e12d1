package e2etest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoPriceEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	resp := postJSON(t, env, "/api/openai/crypto", `{"symbol":"uni"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Equal(t, "UNI", resp.Body["symbol"])
	assert.Equal(t, "eth", resp.Body["chain"])
	assert.Equal(t, 7.25, resp.Body["current_price"])
	assert.Equal(t, -1.5, resp.Body["price_change_percent"])
	assert.Equal(t, "N/A", resp.Body["high_24h"])
	assert.Equal(t, "Moralis", resp.Body["source"])
	assert.NotNil(t, resp.Body["raw_response"])

	assert.Equal(t, 1, env.MockServer.RequestCount("coingecko_search"))
	assert.Equal(t, 1, env.MockServer.RequestCount("coingecko_coins"))
	assert.Equal(t, 0, env.MockServer.RequestCount("ethplorer_search"))
	assert.Equal(t, 1, env.MockServer.RequestCount("moralis_price"))
}

func TestCryptoPriceEndpoint_CachedPrice(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	first := postJSON(t, env, "/api/openai/crypto", `{"symbol":"UNI"}`)
	second := postJSON(t, env, "/api/openai/crypto", `{"symbol":"UNI"}`)

	require.Equal(t, http.StatusOK, first.StatusCode)
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "miss", first.Header.Get("Cache-Status"))
	assert.Equal(t, "hit", second.Header.Get("Cache-Status"))
	assert.Equal(t, first.Body["current_price"], second.Body["current_price"])

	// addresses are resolved on every request, prices are cached
	assert.Equal(t, 2, env.MockServer.RequestCount("coingecko_search"))
	assert.Equal(t, 1, env.MockServer.RequestCount("moralis_price"))
}

func TestCryptoPriceEndpoint_NativeEther(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	resp := postJSON(t, env, "/api/openai/crypto", `{"symbol":"eth"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Equal(t, 3000.5, resp.Body["current_price"])
	assert.Equal(t, 0, env.MockServer.RequestCount("coingecko_search"))
	assert.Equal(t, 0, env.MockServer.RequestCount("ethplorer_search"))
}

func TestCryptoPriceEndpoint_EthplorerFallback(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	resp := postJSON(t, env, "/api/openai/crypto", `{"symbol":"LINK"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Equal(t, 14.1, resp.Body["current_price"])
	// primary query and three wrapped variants
	assert.Equal(t, 4, env.MockServer.RequestCount("coingecko_search"))
	assert.Equal(t, 1, env.MockServer.RequestCount("ethplorer_search"))
}

func TestCryptoPriceEndpoint_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "symbol no provider knows",
			body:           `{"symbol":"BTC"}`,
			expectedStatus: http.StatusNotFound,
			expectedError:  "contract address not found",
		},
		{
			name:           "non EVM asset",
			body:           `{"symbol":"sol"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "not supported on EVM chains",
		},
		{
			name:           "missing symbol",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "symbol is required",
		},
		{
			name:           "malformed body",
			body:           `{"symbol":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "request body must be a JSON object",
		},
	}

	env := SetupTest(t)
	defer env.TearDown()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, env, "/api/openai/crypto", tt.body)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Contains(t, resp.Body["error"], tt.expectedError)
		})
	}

	assert.Equal(t, 0, env.MockServer.RequestCount("moralis_price"))
}

func TestCryptoPriceEndpoint_UpstreamError(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	// USDC resolves but the mock has no price for it
	resp := postJSON(t, env, "/api/openai/crypto", `{"symbol":"USDC"}`)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, resp.Body["error"], "Moralis API error")
	assert.Contains(t, resp.Body["response"], "No pools found")
}

func TestCryptoMetadataEndpoint(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	resp := postJSON(t, env, "/api/crypto/metadata", `{"symbol":"UNI","chain":"eth"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Equal(t, "Uniswap", resp.Body["tokenName"])
	assert.Equal(t, "UNI", resp.Body["tokenSymbol"])
	assert.Equal(t, float64(18), resp.Body["tokenDecimals"])
	assert.Equal(t, 7.25, resp.Body["usdPrice"])
	assert.Equal(t, "Uniswap v3", resp.Body["exchangeName"])
	assert.Equal(t, "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", resp.Body["tokenAddress"])

	native, ok := resp.Body["nativePrice"].(map[string]interface{})
	require.True(t, ok, "Response should contain 'nativePrice' object")
	assert.Equal(t, "ETH", native["symbol"])
}

func TestCryptoMetadataEndpoint_NotFound(t *testing.T) {
	env := SetupTest(t)
	defer env.TearDown()

	resp := postJSON(t, env, "/api/crypto/metadata", `{"symbol":"NOPE"}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Body["error"], "contract address not found for NOPE")
}
