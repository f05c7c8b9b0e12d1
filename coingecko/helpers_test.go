package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/status-im/crypto-insight/config"
)

// fakeClock records requested pauses without sleeping
type fakeClock struct {
	mu      sync.Mutex
	elapsed time.Duration
	sleeps  int
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += d
	c.sleeps++
	return ctx.Err()
}

// scriptedServer answers each request with the next status/body pair and repeats the last one
type scriptedServer struct {
	*httptest.Server
	mu        sync.Mutex
	responses []scriptedResponse
	requests  []*http.Request
}

type scriptedResponse struct {
	status int
	body   string
}

func newScriptedServer(t *testing.T, responses ...scriptedResponse) *scriptedServer {
	s := &scriptedServer{responses: responses}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		idx := len(s.requests)
		s.requests = append(s.requests, r)
		if idx >= len(s.responses) {
			idx = len(s.responses) - 1
		}
		resp := s.responses[idx]
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *scriptedServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *scriptedServer) Request(i int) *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[i]
}

func testProviders(baseURL string) config.ProvidersConfig {
	cfg := config.DefaultProvidersConfig()
	cfg.OverrideCoingeckoURL = baseURL
	cfg.RequestTimeout = 2 * time.Second
	return cfg
}
