package httpapi

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/sharandeepreddy/pf/internal/server/models"
)

// writeCORS sets the fixed CORS header set every response carries. methods
// lists the verbs the endpoint accepts (e.g. "POST, OPTIONS").
func writeCORS(w http.ResponseWriter, methods string) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Allow-Methods", methods)
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeWrappedError writes the {"error":{"message":...}} body used by the
// contact, chat, analytics, and resume endpoints.
func writeWrappedError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"message": msg},
	})
}

// writeFlatError writes the {"error":...} body used by the certificate
// endpoints.
func writeFlatError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// clientInfo extracts the requester's IP, user-agent, and referrer from the
// request. The IP is the first of X-Forwarded-For (first hop),
// CF-Connecting-IP, and the connection's remote address.
func clientInfo(r *http.Request) models.ClientInfo {
	ip := r.Header.Get("X-Forwarded-For")
	if idx := strings.Index(ip, ","); idx >= 0 {
		ip = strings.TrimSpace(ip[:idx])
	}
	if ip == "" {
		ip = r.Header.Get("Cf-Connecting-Ip")
	}
	if ip == "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ip = host
		} else {
			ip = r.RemoteAddr
		}
	}

	return models.ClientInfo{
		IPAddress: ip,
		UserAgent: r.Header.Get("User-Agent"),
		Referrer:  r.Header.Get("Referer"),
	}
}
