// Package certificates provides the PostgreSQL-backed repository for
// uploaded certificate files, scoped by owner token.
package certificates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/dbx"
	"github.com/sharandeepreddy/pf/internal/server/identity"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

// PostgresRepository implements certificate storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the certificate with its file blob and scans back the
// generated id.
func (r *PostgresRepository) Create(ctx context.Context, cert *models.Certificate) error {
	query := `
		INSERT INTO certificates (name, issuer, date, credential, file_name, file_type, file_data, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		cert.Name, cert.Issuer, cert.Date, cert.Credential,
		cert.FileName, cert.FileType, cert.FileData, cert.OwnerToken).
		Scan(&cert.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// ListByOwner returns the owner's certificates newest first. The file blob
// is not selected.
func (r *PostgresRepository) ListByOwner(ctx context.Context, owner identity.OwnerToken) ([]*models.Certificate, error) {
	query := `
		SELECT id, name, issuer, date, credential, file_name, file_type, created_at
		FROM certificates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, string(owner))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Certificate
	for rows.Next() {
		var item models.Certificate
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Issuer, &item.Date, &item.Credential,
			&item.FileName, &item.FileType, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.OwnerToken = string(owner)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetFile fetches the stored blob for id when it belongs to owner.
func (r *PostgresRepository) GetFile(ctx context.Context, id int64, owner identity.OwnerToken) (*models.CertificateFile, error) {
	query := `
		SELECT file_name, file_type, file_data
		FROM certificates
		WHERE id = $1 AND user_id = $2
	`
	file := &models.CertificateFile{}
	err := r.db.QueryRowContext(ctx, query, id, string(owner)).
		Scan(&file.FileName, &file.FileType, &file.FileData)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return file, nil
}

// Delete removes the row for id when it belongs to owner. Zero rows
// affected means the id is absent or owned by someone else; both collapse
// into common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, owner identity.OwnerToken) error {
	query := `
		DELETE FROM certificates
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, string(owner))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
