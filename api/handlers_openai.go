package api

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/interfaces"
	"github.com/status-im/crypto-insight/openai_chat"
)

// handleChat sends the prompt to the model and runs the function it asks for.
// Plain completions are returned as received from the provider.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	prompt, err := decodeChatRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	action, err := s.assistant.Chat(r.Context(), prompt)
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch action := action.(type) {
	case interfaces.InvokeGetPrice:
		s.logger.WithFields(logrus.Fields{"function": interfaces.FunctionGetCryptoPrice, "symbol": action.Symbol}).Info("Model requested a function call")
		s.respondWithPrice(r.Context(), w, action.Symbol, action.Chain)
	case interfaces.InvokeGenerateReport:
		s.logger.WithFields(logrus.Fields{"function": interfaces.FunctionGenerateCryptoReport, "symbol": action.Symbol}).Info("Model requested a function call")
		s.respondWithReport(r.Context(), w, action.Symbol, action.Chain)
	case interfaces.PlainText:
		if len(action.Raw) > 0 {
			s.sendJSONResponse(w, action.Raw)
			return
		}
		s.sendJSONResponse(w, map[string]string{"content": action.Content})
	default:
		s.writeError(w, fmt.Errorf("unexpected chat action %T", action))
	}
}

// handleFunctions lists the functions offered to the model
func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, openai_chat.FunctionDefinitions())
}
