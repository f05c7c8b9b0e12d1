package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/cache"
	"github.com/status-im/crypto-insight/interfaces"
)

// RequestLimiter throttles inbound requests per client key
type RequestLimiter interface {
	Allow(ctx context.Context, key string) (bool, int, error)
	Limit() int
}

// PriceCacheStats reports the state of the price response cache
type PriceCacheStats interface {
	Stats() cache.ServiceStats
}

// Info describes the running deployment on the welcome endpoint
type Info struct {
	APIVersion  string
	Environment string
}

type Server struct {
	port       string
	info       Info
	market     interfaces.IMarketDataService
	reports    interfaces.IReportGenerator
	store      interfaces.IReportStore
	assistant  interfaces.IChatAssistant
	limiter    RequestLimiter
	priceCache PriceCacheStats
	server     *http.Server
	logger     *logrus.Entry
}

func New(port string, info Info, market interfaces.IMarketDataService, reports interfaces.IReportGenerator, store interfaces.IReportStore, assistant interfaces.IChatAssistant) *Server {
	return &Server{
		port:      port,
		info:      info,
		market:    market,
		reports:   reports,
		store:     store,
		assistant: assistant,
		logger:    logrus.WithField("component", "API"),
	}
}

// SetRateLimiter enables per-client throttling of the /api routes
func (s *Server) SetRateLimiter(limiter RequestLimiter) {
	s.limiter = limiter
}

// SetPriceCache exposes the price cache state on the health endpoint
func (s *Server) SetPriceCache(stats PriceCacheStats) {
	s.priceCache = stats
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.newRouter()
}

func (s *Server) newRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware, corsMiddleware)

	router.HandleFunc("/", s.handleWelcome).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())

	// Routes live on the top-level router so a method mismatch answers 405.
	// OPTIONS is matched so the CORS middleware can answer preflight requests.
	router.Handle("/api/crypto/metadata", s.limited(s.handleCryptoMetadata)).Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/api/crypto/report", s.limited(s.handleCryptoReport)).Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/api/openai/crypto", s.limited(s.handleCryptoPrice)).Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/api/openai/chat", s.limited(s.handleChat)).Methods(http.MethodPost, http.MethodOptions)
	router.Handle("/api/openai/functions", s.limited(s.handleFunctions)).Methods(http.MethodGet, http.MethodOptions)

	return router
}

// limited applies the per-client rate limit to an /api handler when a limiter is set
func (s *Server) limited(handler http.HandlerFunc) http.Handler {
	if s.limiter == nil {
		return handler
	}
	return s.rateLimitMiddleware(handler)
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.newRouter(),
	}

	s.logger.Infof("Server starting at http://localhost:%s", s.port)
	s.logger.Info("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("Server error: %v", err)
		}
	}()

	return nil
}
