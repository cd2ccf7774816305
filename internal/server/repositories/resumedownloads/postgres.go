// Package resumedownloads provides the PostgreSQL-backed repository for
// resume download records.
package resumedownloads

import (
	"context"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

// PostgresRepository implements download-record storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one download record.
func (r *PostgresRepository) Create(ctx context.Context, dl *models.ResumeDownload) error {
	query := `
		INSERT INTO resume_downloads (ip_address, user_agent, referrer)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, dl.IPAddress, dl.UserAgent, dl.Referrer)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
