package analytics

import (
	"context"

	"github.com/sharandeepreddy/pf/internal/server/models"
)

// Repository persists analytics events. Events are append-only and callers
// treat failures as non-fatal.
type Repository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
}
