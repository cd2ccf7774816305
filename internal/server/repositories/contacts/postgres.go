// Package contacts provides the PostgreSQL-backed repository for
// contact-form messages.
package contacts

import (
	"context"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

// PostgresRepository implements contact storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one contact message and scans back the generated id and
// creation timestamp.
func (r *PostgresRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.IPAddress, msg.UserAgent).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
