package httpapi

import "net/http"

func (s *Server) handleResumeDownload(w http.ResponseWriter, r *http.Request) {
	writeCORS(w, "GET, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeWrappedError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	url, err := s.deps.Resume.RecordDownload(r.Context(), clientInfo(r))
	if err != nil {
		s.logger.Error(r.Context(), "resume download failed", "error", err)
		writeWrappedError(w, http.StatusInternalServerError,
			"There was an error processing your request. Please contact sharanreddy.adla@gmail.com directly.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"resumeUrl": url,
	})
}
