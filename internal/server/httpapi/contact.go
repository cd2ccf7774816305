package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/services"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "POST, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeWrappedError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWrappedError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := s.deps.Contacts.Submit(r.Context(), services.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}, clientInfo(r))
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			writeWrappedError(w, http.StatusBadRequest, ve.Message)
			return
		}
		s.logger.Error(r.Context(), "contact submit failed", "error", err)
		writeWrappedError(w, http.StatusInternalServerError,
			"There was an error processing your message. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Thank you for reaching out! I'll get back to you within 24 hours.",
		"id":        msg.ID,
		"timestamp": msg.CreatedAt,
	})
}
