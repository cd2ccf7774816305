package contacts

import (
	"context"

	"github.com/sharandeepreddy/pf/internal/server/models"
)

// Repository persists contact-form submissions.
type Repository interface {
	// Create inserts the message and fills in its ID and CreatedAt.
	Create(ctx context.Context, msg *models.ContactMessage) error
}
