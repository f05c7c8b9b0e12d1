package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/metrics"
)

// handleCryptoMetadata returns token metadata for {symbol, chain?}
func (s *Server) handleCryptoMetadata(w http.ResponseWriter, r *http.Request) {
	symbol, chain, err := s.readSymbolRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.WithFields(logrus.Fields{"symbol": symbol, "chain": chain}).Info("Metadata requested")
	record, err := s.market.GetMetadata(r.Context(), symbol, chain)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.sendJSONResponse(w, newMetadataResponse(record))
}

// handleCryptoPrice returns the normalized price record for {symbol, chain?}
func (s *Server) handleCryptoPrice(w http.ResponseWriter, r *http.Request) {
	symbol, chain, err := s.readSymbolRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.WithFields(logrus.Fields{"symbol": symbol, "chain": chain}).Info("Price requested")
	s.respondWithPrice(r.Context(), w, symbol, chain)
}

// handleCryptoReport generates a report for {symbol, chain?} and persists it
func (s *Server) handleCryptoReport(w http.ResponseWriter, r *http.Request) {
	symbol, chain, err := s.readSymbolRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.WithFields(logrus.Fields{"symbol": symbol, "chain": chain}).Info("Report requested")
	s.respondWithReport(r.Context(), w, symbol, chain)
}

func (s *Server) respondWithPrice(ctx context.Context, w http.ResponseWriter, symbol string, chain interfaces.Chain) {
	record, err := s.market.GetPrice(ctx, symbol, chain)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.setCacheStatusHeader(w, record.CacheStatus)
	s.sendJSONResponse(w, newPriceResponse(record))
}

func (s *Server) respondWithReport(ctx context.Context, w http.ResponseWriter, symbol string, chain interfaces.Chain) {
	report, err := s.reports.GenerateReport(ctx, symbol, chain)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(ctx, *report); err != nil {
		metrics.RecordReport(false)
		s.writeError(w, fmt.Errorf("save report for %s: %w", report.Symbol, err))
		return
	}
	metrics.RecordReport(true)

	s.logger.WithFields(logrus.Fields{"symbol": report.Symbol, "id": report.ID}).Info("Report generated and saved")
	s.sendJSONResponse(w, newReportResponse(report))
}
