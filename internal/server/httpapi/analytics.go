package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sharandeepreddy/pf/internal/common"
)

type analyticsRequest struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// handleAnalyticsTrack is fire-and-forget from the caller's perspective:
// after validation passes, storage failures are logged and downgraded to a
// success-shaped 200 so tracking never breaks the primary user action.
func (s *Server) handleAnalyticsTrack(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "POST, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeWrappedError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req analyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWrappedError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.deps.Analytics.Track(r.Context(), req.Event, req.Data, clientInfo(r)); err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			writeWrappedError(w, http.StatusBadRequest, ve.Message)
			return
		}
		s.logger.Warn(r.Context(), "analytics tracking failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Event tracking failed, but continuing...",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event tracked successfully",
	})
}
