// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/migrations"
	"github.com/sharandeepreddy/pf/internal/server/repositories/analytics"
	"github.com/sharandeepreddy/pf/internal/server/repositories/certificates"
	"github.com/sharandeepreddy/pf/internal/server/repositories/chats"
	"github.com/sharandeepreddy/pf/internal/server/repositories/contacts"
	"github.com/sharandeepreddy/pf/internal/server/repositories/resumedownloads"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Contacts returns a contacts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Contacts(db dbx.DBTX) contacts.Repository {
	return contacts.NewPostgresRepository(db)
}

// Chats returns a chats.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Chats(db dbx.DBTX) chats.Repository {
	return chats.NewPostgresRepository(db)
}

// Analytics returns an analytics.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Analytics(db dbx.DBTX) analytics.Repository {
	return analytics.NewPostgresRepository(db)
}

// ResumeDownloads returns a resumedownloads.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) ResumeDownloads(db dbx.DBTX) resumedownloads.Repository {
	return resumedownloads.NewPostgresRepository(db)
}

// Certificates returns a certificates.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Certificates(db dbx.DBTX) certificates.Repository {
	return certificates.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection. Goose's version table makes the
// step idempotent, so concurrent cold starts are harmless.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
