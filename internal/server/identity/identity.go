// Package identity derives the pseudo-identity that scopes certificate
// ownership. The token is a reversible base64 encoding of client IP and
// user-agent; it is NOT a security boundary. Any caller who replays the
// same header values assumes the same identity, and unrelated visitors
// behind one proxy/user-agent pair collide into one identity. Both are
// accepted limitations of the scheme, kept deliberately weak so it can be
// swapped for real authentication without touching handlers or storage.
package identity

import (
	"encoding/base64"
	"net/http"
)

// OwnerToken is the derived per-visitor identifier stored on certificate
// rows and matched exactly on read and delete.
type OwnerToken string

// Resolver maps request headers to an OwnerToken. Implementations must be
// deterministic: the same headers always produce the same token.
type Resolver interface {
	Resolve(h http.Header) OwnerToken
}

// HeaderResolver derives the token as base64("{ip}-{userAgent}") where ip is
// the first of the Client-IP and X-Forwarded-For headers (literal
// "anonymous" when both are absent) and userAgent falls back to "unknown".
type HeaderResolver struct{}

func NewHeaderResolver() *HeaderResolver {
	return &HeaderResolver{}
}

func (r *HeaderResolver) Resolve(h http.Header) OwnerToken {
	identifier := h.Get("Client-Ip")
	if identifier == "" {
		identifier = h.Get("X-Forwarded-For")
	}
	if identifier == "" {
		identifier = "anonymous"
	}

	agent := h.Get("User-Agent")
	if agent == "" {
		agent = "unknown"
	}

	token := base64.StdEncoding.EncodeToString([]byte(identifier + "-" + agent))
	return OwnerToken(token)
}
