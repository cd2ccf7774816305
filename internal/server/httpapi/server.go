// Package httpapi exposes the portfolio backend as a JSON HTTP API with the
// CORS and error-shape conventions the browser front end expects. Every
// endpoint accepts exactly one method plus OPTIONS for preflight; all
// responses carry Access-Control-Allow-Origin: *.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sharandeepreddy/pf/internal/logging"
	"github.com/sharandeepreddy/pf/internal/server/identity"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/services"
)

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, req services.ContactRequest, client models.ClientInfo) (*models.ContactMessage, error)
}

// ChatService selects canned replies and persists chat turns.
type ChatService interface {
	Respond(ctx context.Context, message, sessionID string, client models.ClientInfo) (reply, session string, err error)
}

// AnalyticsService records tracked client events.
type AnalyticsService interface {
	Track(ctx context.Context, eventName string, payload map[string]any, client models.ClientInfo) error
}

// ResumeService records downloads and returns the resume URL.
type ResumeService interface {
	RecordDownload(ctx context.Context, client models.ClientInfo) (string, error)
}

// CertificateService handles owner-scoped certificate operations.
type CertificateService interface {
	Upload(ctx context.Context, req services.CertificateUpload, owner identity.OwnerToken) (int64, error)
	List(ctx context.Context, owner identity.OwnerToken) ([]*models.Certificate, error)
	GetFile(ctx context.Context, id int64, owner identity.OwnerToken) (*models.CertificateFile, error)
	Delete(ctx context.Context, id int64, owner identity.OwnerToken) error
}

// Pinger reports backing-store reachability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps bundles the collaborators the server dispatches to.
type Deps struct {
	Contacts     ContactService
	Chat         ChatService
	Analytics    AnalyticsService
	Resume       ResumeService
	Certificates CertificateService
	Identity     identity.Resolver
	DB           Pinger
}

// Server hosts the HTTP API.
type Server struct {
	address string
	logger  logging.Logger
	deps    Deps
}

// NewServer constructs a Server listening on address.
func NewServer(address string, l logging.Logger, deps Deps) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		deps:    deps,
	}
}

// Routes returns the handler with every endpoint mounted under /api/.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/contact", s.recoverPanic(s.handleContact))
	mux.HandleFunc("/api/chat", s.recoverPanic(s.handleChat))
	mux.HandleFunc("/api/analytics/track", s.recoverPanic(s.handleAnalyticsTrack))
	mux.HandleFunc("/api/resume/download", s.recoverPanic(s.handleResumeDownload))
	mux.HandleFunc("/api/upload-certificate", s.recoverPanic(s.handleUploadCertificate))
	mux.HandleFunc("/api/get-certificates", s.recoverPanic(s.handleGetCertificates))
	mux.HandleFunc("/api/get-certificate-file", s.recoverPanic(s.handleGetCertificateFile))
	mux.HandleFunc("/api/delete-certificate", s.recoverPanic(s.handleDeleteCertificate))
	mux.HandleFunc("/api/health", s.recoverPanic(s.handleHealth))

	return mux
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// recoverPanic converts handler panics into a 500 JSON response so no
// request ever surfaces as a raw fault.
func (s *Server) recoverPanic(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(r.Context(), "panic in handler", "path", r.URL.Path, "panic", rec)
				writeWrappedError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next(w, r)
	}
}
