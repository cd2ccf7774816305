package chats

import (
	"context"

	"github.com/sharandeepreddy/pf/internal/server/models"
)

// Repository persists chat turns. Rows are append-only; a session is just
// the set of rows sharing a session token.
type Repository interface {
	// Create inserts the turn and fills in its ID and CreatedAt.
	Create(ctx context.Context, turn *models.ChatTurn) error
}
