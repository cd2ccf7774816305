package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/identity"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/repositories/analytics"
	"github.com/sharandeepreddy/pf/internal/server/repositories/certificates"
	"github.com/sharandeepreddy/pf/internal/server/repositories/chats"
	"github.com/sharandeepreddy/pf/internal/server/repositories/contacts"
	"github.com/sharandeepreddy/pf/internal/server/repositories/resumedownloads"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// --- fakes ---

type fakeContactsRepo struct {
	err error
}

func (f *fakeContactsRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	msg.ID = 1
	return nil
}

type fakeChatsRepo struct {
	err  error
	last *models.ChatTurn
}

func (f *fakeChatsRepo) Create(ctx context.Context, turn *models.ChatTurn) error {
	if f.err != nil {
		return f.err
	}
	f.last = turn
	turn.ID = 1
	return nil
}

type fakeAnalyticsRepo struct {
	err  error
	last *models.AnalyticsEvent
}

func (f *fakeAnalyticsRepo) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	if f.err != nil {
		return f.err
	}
	f.last = event
	return nil
}

type fakeResumeRepo struct {
	err error
}

func (f *fakeResumeRepo) Create(ctx context.Context, dl *models.ResumeDownload) error {
	return f.err
}

type fakeCertsRepo struct {
	createErr error
	listOut   []*models.Certificate
	listErr   error
	fileOut   *models.CertificateFile
	fileErr   error
	deleteErr error

	lastCreated *models.Certificate
}

func (f *fakeCertsRepo) Create(ctx context.Context, cert *models.Certificate) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.lastCreated = cert
	cert.ID = 5
	return nil
}

func (f *fakeCertsRepo) ListByOwner(ctx context.Context, owner identity.OwnerToken) ([]*models.Certificate, error) {
	return f.listOut, f.listErr
}

func (f *fakeCertsRepo) GetFile(ctx context.Context, id int64, owner identity.OwnerToken) (*models.CertificateFile, error) {
	return f.fileOut, f.fileErr
}

func (f *fakeCertsRepo) Delete(ctx context.Context, id int64, owner identity.OwnerToken) error {
	return f.deleteErr
}

// fakeRepoManager returns the configured fakes regardless of the DBTX.
type fakeRepoManager struct {
	contacts  contacts.Repository
	chats     chats.Repository
	analytics analytics.Repository
	downloads resumedownloads.Repository
	certs     certificates.Repository
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Contacts(db dbx.DBTX) contacts.Repository            { return f.contacts }
func (f *fakeRepoManager) Chats(db dbx.DBTX) chats.Repository                  { return f.chats }
func (f *fakeRepoManager) Analytics(db dbx.DBTX) analytics.Repository          { return f.analytics }
func (f *fakeRepoManager) ResumeDownloads(db dbx.DBTX) resumedownloads.Repository {
	return f.downloads
}
func (f *fakeRepoManager) Certificates(db dbx.DBTX) certificates.Repository { return f.certs }
