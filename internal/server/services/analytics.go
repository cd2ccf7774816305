package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/repositories/repomanager"
)

// AnalyticsService records tracked client actions. Storage failures are
// returned to the caller, which is expected to downgrade them: tracking
// must never break the primary user action.
type AnalyticsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(db *sql.DB, m repomanager.RepositoryManager) *AnalyticsService {
	return &AnalyticsService{db: db, repomanager: m}
}

// Track validates the event name and persists the event with its opaque
// payload and client info.
func (s *AnalyticsService) Track(ctx context.Context, eventName string, payload map[string]any, client models.ClientInfo) error {
	if eventName == "" {
		return common.NewValidationError("Event name is required")
	}

	event := &models.AnalyticsEvent{
		EventName: eventName,
		Payload:   payload,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Referrer:  client.Referrer,
	}

	repo := s.repomanager.Analytics(s.db)
	if err := repo.Create(ctx, event); err != nil {
		return fmt.Errorf("error creating analytics event: %w", err)
	}

	return nil
}
