package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "crypto_insight_"

// Provider names used as metric labels
const (
	ProviderCoingeckoSearch = "coingecko-search"
	ProviderCoingeckoCoins  = "coingecko-coins"
	ProviderEthplorer       = "ethplorer"
	ProviderMoralis         = "moralis"
	ProviderOpenAI          = "openai"
)

var (
	// Upstream request counter
	// Cardinality: ~25 (5 providers × 5 statuses)
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "provider_requests_total",
			Help: "Total number of HTTP requests to upstream data providers",
		},
		[]string{"provider", "status"},
	)

	// Retry attempts counter
	// Cardinality: ~5 (number of providers)
	ProviderRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "provider_retry_attempts_total",
			Help: "Total number of retry attempts per provider",
		},
		[]string{"provider"},
	)

	// Upstream request latency
	// Cardinality: ~5 (number of providers)
	ProviderLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "provider_request_latency_seconds",
			Help: "Upstream request latency by provider",
		},
		[]string{"provider"},
	)

	// Outcome of contract address resolution by the stage that produced it
	// Cardinality: ~6 (native, unsupported, primary, variant, fallback, not_found)
	ResolutionOutcomeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "contract_resolution_total",
			Help: "Contract address resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// Duration of a full resolution pipeline run
	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "contract_resolution_duration_seconds",
			Help: "Time taken to resolve a symbol to a contract address",
		},
	)

	// Generated reports by persistence result
	// Cardinality: 2 (saved, failed)
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "reports_total",
			Help: "Total number of generated reports by persistence result",
		},
		[]string{"result"},
	)

	// Price cache lookups
	// Cardinality: 2 (hit, miss)
	PriceCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "price_cache_lookups_total",
			Help: "Price cache lookups by status",
		},
		[]string{"status"},
	)
)

// RecordResolution records how a symbol was resolved and how long it took
func RecordResolution(outcome string, duration time.Duration) {
	ResolutionOutcomeTotal.WithLabelValues(outcome).Inc()
	ResolutionDuration.Observe(duration.Seconds())
}

// RecordReport records a generated report and whether it was persisted
func RecordReport(saved bool) {
	if saved {
		ReportsTotal.WithLabelValues("saved").Inc()
		return
	}
	ReportsTotal.WithLabelValues("failed").Inc()
}

// RecordPriceCacheLookup records a hit or a miss of the price cache
func RecordPriceCacheLookup(status string) {
	PriceCacheLookups.WithLabelValues(status).Inc()
}

// MetricsWriter provides a unified interface for recording provider metrics
type MetricsWriter struct {
	provider string
	log      *logrus.Entry
}

// NewMetricsWriter creates a new MetricsWriter for the specified provider
func NewMetricsWriter(provider string) *MetricsWriter {
	return &MetricsWriter{
		provider: provider,
		log:      logrus.WithField("component", "Metrics"),
	}
}

// RecordProviderRequest records a provider request with its status
func (mw *MetricsWriter) RecordProviderRequest(status string) {
	ProviderRequestsTotal.WithLabelValues(mw.provider, status).Inc()
	mw.log.Debugf("%s request recorded with status %s", mw.provider, status)
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ProviderRetryCounter.WithLabelValues(mw.provider).Inc()
	mw.log.Debugf("%s recorded a retry attempt", mw.provider)
}

// RecordLatency records the duration of a single upstream request
func (mw *MetricsWriter) RecordLatency(duration time.Duration) {
	ProviderLatencyHistogram.WithLabelValues(mw.provider).Observe(duration.Seconds())
}

// Implement IHttpStatusHandler interface for MetricsWriter
// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordProviderRequest(status)
}

// OnRetry records an HTTP retry attempt
func (mw *MetricsWriter) OnRetry() {
	mw.RecordRetryAttempt()
}

// OnLatency records the duration of an upstream request
func (mw *MetricsWriter) OnLatency(duration time.Duration) {
	mw.RecordLatency(duration)
}
