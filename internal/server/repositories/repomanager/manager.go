package repomanager

import (
	"context"
	"database/sql"

	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/repositories/analytics"
	"github.com/sharandeepreddy/pf/internal/server/repositories/certificates"
	"github.com/sharandeepreddy/pf/internal/server/repositories/chats"
	"github.com/sharandeepreddy/pf/internal/server/repositories/contacts"
	"github.com/sharandeepreddy/pf/internal/server/repositories/resumedownloads"
)

// RepositoryManager vends repository implementations and exposes the schema
// migration hook run once at startup.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Contacts(db dbx.DBTX) contacts.Repository
	Chats(db dbx.DBTX) chats.Repository
	Analytics(db dbx.DBTX) analytics.Repository
	ResumeDownloads(db dbx.DBTX) resumedownloads.Repository
	Certificates(db dbx.DBTX) certificates.Repository
}
