package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/interfaces"
)

// maxRequestBody bounds JSON request bodies
const maxRequestBody = 1 << 20

var (
	errInvalidBody    = errors.New("request body must be a JSON object")
	errSymbolRequired = errors.New("symbol is required")
	errPromptRequired = errors.New("prompt is required")
)

type symbolRequest struct {
	Symbol string `json:"symbol"`
	Chain  string `json:"chain"`
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Response string `json:"response,omitempty"`
}

// setCacheStatusHeader sets the Cache-Status header based on cache status
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus interfaces.CacheStatus) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", cacheStatus.String())
	}
}

// sendJSONResponse writes a 200 JSON response
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.writeJSON(w, http.StatusOK, data)
}

// writeJSON is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	// Marshal the data to calculate content length and ETag
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// Calculate ETag (MD5 hash of the response)
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		s.logger.Errorf("Error writing response: %v", err)
	}
}

// writeError maps err to a status code and writes the error body.
// Upstream bodies are passed through in the "response" field.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	body := errorResponse{Error: err.Error()}

	var resultErr *interfaces.ResultError
	if errors.As(err, &resultErr) {
		body.Response = resultErr.Body
	}

	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).Error("Request failed")
	} else {
		s.logger.WithError(err).Info("Request rejected")
	}
	s.writeJSON(w, status, body)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, errSymbolRequired), errors.Is(err, errPromptRequired):
		return http.StatusBadRequest
	}

	switch interfaces.KindOf(err) {
	case interfaces.KindNotFound:
		return http.StatusNotFound
	case interfaces.KindUnsupportedAsset:
		return http.StatusUnprocessableEntity
	case interfaces.KindUpstreamHTTP, interfaces.KindPayload, interfaces.KindRateLimited:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// decodeSymbolRequest reads {symbol, chain?}. The symbol is trimmed and the
// chain defaults to eth.
func decodeSymbolRequest(r *http.Request) (string, interfaces.Chain, error) {
	var req symbolRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return "", "", err
	}
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		return "", "", errSymbolRequired
	}
	return symbol, interfaces.ParseChain(req.Chain), nil
}

// readSymbolRequest decodes a symbol request and warns about chains outside the
// supported set, whose contract lookups fall back to the Ethereum platform
func (s *Server) readSymbolRequest(r *http.Request) (string, interfaces.Chain, error) {
	symbol, chain, err := decodeSymbolRequest(r)
	if err != nil {
		return "", "", err
	}
	if !chain.Known() {
		s.logger.WithFields(logrus.Fields{"symbol": symbol, "chain": chain}).
			Warnf("Unknown chain, contract lookup uses the %s platform", chain.PlatformKey())
	}
	return symbol, chain, nil
}

func decodeChatRequest(r *http.Request) (string, error) {
	var req chatRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return "", err
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", errPromptRequired
	}
	return prompt, nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Errorf("Error shutting down server: %v", err)
		}
	}
}
