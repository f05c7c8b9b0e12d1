package e2etest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Moralis API key the mock server expects
const mockMoralisKey = "moralis-e2e"

// MockServer stands in for CoinGecko, Ethplorer, Moralis and OpenAI
type MockServer struct {
	server *httptest.Server

	mu sync.RWMutex
	// CoinGecko search query -> coin id
	SearchResults map[string]string
	// CoinGecko coin id -> platforms object
	Platforms map[string]map[string]string
	// Ethplorer symbol -> address
	EthplorerTokens map[string]string
	// lowercase address -> Moralis price payload
	Prices map[string]string
	// OpenAI completion text for report prompts
	ReportSummary string

	requests map[string]int
}

// NewMockServer creates and returns a new mock upstream server
func NewMockServer() *MockServer {
	ms := &MockServer{
		SearchResults:   defaultSearchResults(),
		Platforms:       defaultPlatforms(),
		EthplorerTokens: defaultEthplorerTokens(),
		Prices:          defaultPrices(),
		ReportSummary:   "Uniswap trades sideways with healthy volume.",
		requests:        make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/search", ms.handleCoingeckoSearch)
	mux.HandleFunc("/api/v3/coins/", ms.handleCoingeckoCoin)
	mux.HandleFunc("/search", ms.handleEthplorerSearch)
	mux.HandleFunc("/api/v2.2/erc20/", ms.handleMoralisPrice)
	mux.HandleFunc("/v1/chat/completions", ms.handleChatCompletion)

	// httptest.Server automatically selects a free port
	ms.server = httptest.NewServer(mux)
	return ms
}

// GetURL returns the base URL of the mock server
func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

// Close closes the mock server
func (ms *MockServer) Close() {
	if ms.server != nil {
		ms.server.Close()
	}
}

// RequestCount returns how many requests reached the named upstream route
func (ms *MockServer) RequestCount(route string) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.requests[route]
}

func (ms *MockServer) count(route string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests[route]++
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func (ms *MockServer) handleCoingeckoSearch(w http.ResponseWriter, r *http.Request) {
	ms.count("coingecko_search")
	query := r.URL.Query().Get("query")

	ms.mu.RLock()
	id, ok := ms.SearchResults[query]
	ms.mu.RUnlock()

	if !ok {
		writeJSON(w, http.StatusOK, `{"coins":[],"exchanges":[]}`)
		return
	}
	writeJSON(w, http.StatusOK, fmt.Sprintf(`{"coins":[{"id":%q,"name":%q}]}`, id, id))
}

func (ms *MockServer) handleCoingeckoCoin(w http.ResponseWriter, r *http.Request) {
	ms.count("coingecko_coins")
	id := strings.TrimPrefix(r.URL.Path, "/api/v3/coins/")

	ms.mu.RLock()
	platforms, ok := ms.Platforms[id]
	ms.mu.RUnlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, `{"error":"coin not found"}`)
		return
	}
	data, _ := json.Marshal(map[string]interface{}{"id": id, "platforms": platforms})
	writeJSON(w, http.StatusOK, string(data))
}

func (ms *MockServer) handleEthplorerSearch(w http.ResponseWriter, r *http.Request) {
	ms.count("ethplorer_search")
	query := r.URL.Query().Get("query")

	ms.mu.RLock()
	address, ok := ms.EthplorerTokens[strings.ToUpper(query)]
	ms.mu.RUnlock()

	if !ok {
		writeJSON(w, http.StatusOK, `{"tokens":[]}`)
		return
	}
	writeJSON(w, http.StatusOK, fmt.Sprintf(`{"tokens":[{"address":%q,"symbol":%q}]}`, address, query))
}

func (ms *MockServer) handleMoralisPrice(w http.ResponseWriter, r *http.Request) {
	ms.count("moralis_price")
	if r.Header.Get("X-API-Key") != mockMoralisKey {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid key"}`)
		return
	}

	address := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v2.2/erc20/"), "/price")

	ms.mu.RLock()
	payload, ok := ms.Prices[strings.ToLower(address)]
	ms.mu.RUnlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, `{"message":"No pools found with enough liquidity, to calculate the price"}`)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleChatCompletion answers report prompts with ReportSummary and chat
// prompts with a tool call chosen from the prompt text
func (ms *MockServer) handleChatCompletion(w http.ResponseWriter, r *http.Request) {
	ms.count("openai_chat")
	body, _ := io.ReadAll(r.Body)

	var req struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
		Tools []json.RawMessage `json:"tools"`
	}
	if err := json.Unmarshal(body, &req); err != nil || len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, `{"error":{"message":"invalid request","type":"invalid_request_error"}}`)
		return
	}
	prompt := strings.ToLower(req.Messages[0].Content)

	if len(req.Tools) == 0 {
		ms.mu.RLock()
		summary := ms.ReportSummary
		ms.mu.RUnlock()
		writeJSON(w, http.StatusOK, completion(fmt.Sprintf(`{"role":"assistant","content":%q}`, summary)))
		return
	}

	switch {
	case strings.Contains(prompt, "report"):
		writeJSON(w, http.StatusOK, completion(toolCall("generate_crypto_report", `{"symbol":"UNI"}`)))
	case strings.Contains(prompt, "price"):
		writeJSON(w, http.StatusOK, completion(toolCall("get_crypto_price", `{"symbol":"uni","chain":"eth"}`)))
	default:
		writeJSON(w, http.StatusOK, completion(`{"role":"assistant","content":"Hello! Ask me about a token."}`))
	}
}

func completion(message string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-e2e",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4-1106-preview",
		"choices": [{"index": 0, "message": %s, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 10, "total_tokens": 20}
	}`, message)
}

func toolCall(name, arguments string) string {
	return fmt.Sprintf(`{"role":"assistant","content":null,"tool_calls":[{"id":"call_e2e","type":"function","function":{"name":%q,"arguments":%q}}]}`, name, arguments)
}

func defaultSearchResults() map[string]string {
	return map[string]string{
		"uni":  "uniswap",
		"usdc": "usd-coin",
		// coin without an ethereum contract
		"btc": "bitcoin",
	}
}

func defaultPlatforms() map[string]map[string]string {
	return map[string]map[string]string{
		"uniswap": {
			"ethereum":            "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984",
			"binance-smart-chain": "0xbf5140a22578168fd562dccf235e5d43a02ce9b1",
		},
		"usd-coin": {
			"ethereum": "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
		},
		"bitcoin": {
			"": "",
		},
	}
}

func defaultEthplorerTokens() map[string]string {
	return map[string]string{
		"LINK": "0x514910771af9ca656af840dff83e8264ecf986ca",
	}
}

func defaultPrices() map[string]string {
	return map[string]string{
		"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984": `{
			"tokenName": "Uniswap",
			"tokenSymbol": "UNI",
			"tokenLogo": "https://cdn.moralis.io/eth/0x1f9840a85d5af5bf1d1762f925bdaddc4201f984.png",
			"tokenDecimals": "18",
			"nativePrice": {"value": "2426000000000000", "decimals": 18, "name": "Ether", "symbol": "ETH", "address": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"},
			"usdPrice": 7.25,
			"usdPriceFormatted": "7.25",
			"24hrPercentChange": "-1.5",
			"exchangeName": "Uniswap v3",
			"exchangeAddress": "0x1F98431c8aD98523631AE4a59f267346ea31F984",
			"tokenAddress": "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984"
		}`,
		"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2": `{
			"tokenName": "Wrapped Ether",
			"tokenSymbol": "WETH",
			"tokenDecimals": "18",
			"usdPrice": 3000.5,
			"exchangeName": "Uniswap v3",
			"tokenAddress": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"
		}`,
		"0x514910771af9ca656af840dff83e8264ecf986ca": `{
			"tokenName": "ChainLink Token",
			"tokenSymbol": "LINK",
			"tokenDecimals": "18",
			"usdPrice": 14.1,
			"tokenAddress": "0x514910771af9ca656af840dff83e8264ecf986ca"
		}`,
	}
}
