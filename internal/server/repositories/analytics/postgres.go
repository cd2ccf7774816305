// Package analytics provides the PostgreSQL-backed repository for tracked
// client events.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

// PostgresRepository implements event storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one analytics event. The payload is marshalled to JSON for
// the jsonb column; a nil payload is stored as an empty object.
func (r *PostgresRepository) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	payload := event.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("payload marshal error: %w", err)
	}

	query := `
		INSERT INTO analytics_events (event_name, event_data, ip_address, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		event.EventName, data, event.IPAddress, event.UserAgent, event.Referrer)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
