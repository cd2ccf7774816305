// Package chats provides the PostgreSQL-backed repository for chat turns.
package chats

import (
	"context"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

// PostgresRepository implements chat-turn storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one chat turn and scans back the generated id and
// creation timestamp.
func (r *PostgresRepository) Create(ctx context.Context, turn *models.ChatTurn) error {
	query := `
		INSERT INTO chat_sessions (session_id, user_message, bot_response, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		turn.SessionID, turn.UserMessage, turn.BotResponse, turn.IPAddress, turn.UserAgent).
		Scan(&turn.ID, &turn.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
