package api

import (
	"context"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// handleWelcome identifies the API and the deployment
func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, map[string]string{
		"message":     "Welcome to the Crypto Insight API",
		"version":     s.info.APIVersion,
		"environment": s.info.Environment,
	})
}

// handleHealth responds with 200 OK while the process runs and reports
// the reachability of the report store and the price cache size
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"database":     "unknown",
		"market_data":  "unknown",
		"reports":      "unknown",
		"chat":         "unknown",
		"rate_limiter": "disabled",
		"price_cache":  "disabled",
	}
	status := map[string]interface{}{
		"status":   "ok",
		"services": services,
	}

	if s.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			s.logger.WithError(err).Warn("Report store ping failed")
			services["database"] = "down"
			status["status"] = "degraded"
		} else {
			services["database"] = "up"
		}
	}

	if s.market != nil {
		services["market_data"] = "up"
	}
	if s.reports != nil {
		services["reports"] = "up"
	}
	if s.assistant != nil {
		services["chat"] = "up"
	}
	if s.limiter != nil {
		services["rate_limiter"] = "up"
	}
	if s.priceCache != nil {
		if stats := s.priceCache.Stats(); stats.Enabled {
			services["price_cache"] = "up"
			status["price_cache_items"] = stats.GoCacheItems
		}
	}

	s.sendJSONResponse(w, status)
}
