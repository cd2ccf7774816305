// Package services contains server-side business logic: field validation,
// pseudo-identity-scoped certificate access, chat reply selection, and
// best-effort analytics tracking.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/repositories/repomanager"
)

// emailPattern is the same permissive check the front end applies: one '@',
// no whitespace, a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService handles contact-form submissions.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContactService constructs a ContactService.
func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// ContactRequest is a contact-form submission before validation.
type ContactRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit validates the submission and persists it. The returned message
// carries the generated id and creation timestamp.
func (s *ContactService) Submit(ctx context.Context, req ContactRequest, client models.ClientInfo) (*models.ContactMessage, error) {
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return nil, common.NewValidationError("All fields are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, common.NewValidationError("Invalid email format")
	}

	msg := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}

	repo := s.repomanager.Contacts(s.db)
	if err := repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("error creating contact message: %w", err)
	}

	return msg, nil
}
