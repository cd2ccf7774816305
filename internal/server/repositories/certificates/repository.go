package certificates

import (
	"context"

	"github.com/sharandeepreddy/pf/internal/server/identity"
	"github.com/sharandeepreddy/pf/internal/server/models"
)

// Repository persists uploaded certificates. Every read and delete is
// scoped by the owner token: a row belonging to another token behaves as if
// it did not exist (common.ErrorNotFound), so existence is never leaked.
type Repository interface {
	// Create inserts the certificate and fills in its ID.
	Create(ctx context.Context, cert *models.Certificate) error

	// ListByOwner returns the owner's certificates newest first, without
	// the file blob.
	ListByOwner(ctx context.Context, owner identity.OwnerToken) ([]*models.Certificate, error)

	// GetFile returns the stored file for id when it belongs to owner,
	// common.ErrorNotFound otherwise.
	GetFile(ctx context.Context, id int64, owner identity.OwnerToken) (*models.CertificateFile, error)

	// Delete hard-deletes the row for id when it belongs to owner,
	// common.ErrorNotFound otherwise.
	Delete(ctx context.Context, id int64, owner identity.OwnerToken) error
}
