package provider_common

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
	// OnLatency receives the duration of every request that produced a response
	OnLatency(duration time.Duration)
}

// Request statuses reported to IHttpStatusHandler
const (
	StatusSuccess     = "success"
	StatusRateLimited = "rate_limited"
	StatusHTTPError   = "http_error"
	StatusError       = "error"
)

// ClientOptions configures the transport of a provider client
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// IsSuccess reports a 2xx status code
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ProviderClient performs single HTTP requests against one upstream provider.
// Non-2xx statuses are returned as responses, not errors; retry policy belongs to callers.
type ProviderClient struct {
	Client         *http.Client
	Opts           ClientOptions
	StatusHandler  IHttpStatusHandler
	LimiterManager IRateLimiterManager
	log            *logrus.Entry
}

// NewProviderClient creates a new provider client
func NewProviderClient(opts ClientOptions, handler IHttpStatusHandler, limiterManager IRateLimiterManager) *ProviderClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &ProviderClient{
		Client:         client,
		Opts:           opts,
		StatusHandler:  handler,
		LimiterManager: limiterManager,
		log:            logrus.WithField("component", opts.LogPrefix),
	}
}

// Do executes the request once and reads the whole body.
// An error is returned only when no response was received.
func (c *ProviderClient) Do(req *http.Request) (*Response, error) {
	if c.LimiterManager != nil {
		if limiter := c.LimiterManager.GetLimiterForURL(req.URL); limiter != nil {
			if err := limiter.Wait(req.Context()); err != nil {
				c.onRequest(StatusError)
				return nil, fmt.Errorf("rate limiter wait failed: %w", err)
			}
		}
	}

	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		c.onRequest(StatusError)
		return nil, fmt.Errorf("request to %s failed after %.2fs: %w",
			req.URL.Redacted(), time.Since(requestStart).Seconds(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	requestDuration := time.Since(requestStart)
	if err != nil {
		c.onRequest(StatusError)
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Duration:   requestDuration,
	}
	if c.StatusHandler != nil {
		c.StatusHandler.OnLatency(requestDuration)
	}

	switch {
	case result.IsSuccess():
		c.onRequest(StatusSuccess)
	case resp.StatusCode == http.StatusTooManyRequests:
		c.log.Warnf("rate limit exceeded (status %d), retry after %q", resp.StatusCode, resp.Header.Get("Retry-After"))
		c.onRequest(StatusRateLimited)
	default:
		c.log.Debugf("request returned status %d after %.2fs", resp.StatusCode, requestDuration.Seconds())
		c.onRequest(StatusHTTPError)
	}

	return result, nil
}

// OnRetry lets callers that implement a retry policy report their retries
func (c *ProviderClient) OnRetry() {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRetry()
	}
}

func (c *ProviderClient) onRequest(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}
