package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sharandeepreddy/pf/internal/common"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "POST, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeWrappedError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWrappedError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, session, err := s.deps.Chat.Respond(r.Context(), req.Message, req.SessionID, clientInfo(r))
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			writeWrappedError(w, http.StatusBadRequest, ve.Message)
			return
		}
		s.logger.Error(r.Context(), "chat respond failed", "error", err)
		writeWrappedError(w, http.StatusInternalServerError,
			"I'm having trouble processing your request right now. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reply":      reply,
		"session_id": session,
	})
}
