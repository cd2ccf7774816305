package contacts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_FillsIDAndCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO contact_messages .* RETURNING id, created_at`).
		WithArgs("Jane", "jane@example.com", "Hi", "Hello there", "1.2.3.4", "ua").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	msg := &models.ContactMessage{
		Name:      "Jane",
		Email:     "jane@example.com",
		Subject:   "Hi",
		Message:   "Hello there",
		IPAddress: "1.2.3.4",
		UserAgent: "ua",
	}
	if err := repo.Create(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID != 7 {
		t.Errorf("expected id 7, got %d", msg.ID)
	}
	if !msg.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, msg.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO contact_messages`).
		WillReturnError(errors.New("boom"))

	err := repo.Create(context.Background(), &models.ContactMessage{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
