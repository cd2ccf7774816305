package httpapi

import (
	"net/http"
	"time"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "GET, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeWrappedError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := s.deps.DB.PingContext(r.Context()); err != nil {
		s.logger.Error(r.Context(), "health check failed", "error", err)
		writeWrappedError(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
