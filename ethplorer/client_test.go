package ethplorer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
)

func newTestClient(t *testing.T, status int, body string) (*Client, *int32, *http.Request) {
	var calls int32
	var last http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		last = *r
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cfg := config.DefaultProvidersConfig()
	cfg.OverrideEthplorerURL = server.URL
	cfg.RequestTimeout = 2 * time.Second
	return NewClient(cfg), &calls, &last
}

func TestClient_Search(t *testing.T) {
	client, calls, last := newTestClient(t, http.StatusOK,
		`{"tokens":[{"address":"0xdac17f958d2ee523a2206206994597c13d831ec7","name":"Tether USD","symbol":"USDT"},{"address":"0x0"}]}`)

	address, err := client.Search(context.Background(), "USDT")
	require.NoError(t, err)
	assert.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", address)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, "/search", last.URL.Path)
	assert.Equal(t, "USDT", last.URL.Query().Get("query"))
	assert.Equal(t, config.DefaultEthplorerAPIKey, last.URL.Query().Get("apiKey"))
}

func TestClient_SearchNotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no tokens", status: http.StatusOK, body: `{"tokens":[]}`},
		{name: "blank address", status: http.StatusOK, body: `{"tokens":[{"address":""}]}`},
		{name: "error status", status: http.StatusBadRequest, body: `{"error":{"code":1,"message":"Invalid API key"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newTestClient(t, tt.status, tt.body)

			address, err := client.Search(context.Background(), "NOPE")
			assert.Empty(t, address)
			assert.ErrorIs(t, err, interfaces.ErrNotFound)
		})
	}
}

func TestClient_SearchEmptySymbol(t *testing.T) {
	client, calls, _ := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Search(context.Background(), "")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}
