package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/common"
	"github.com/sharandeepreddy/pf/internal/server/identity"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/repositories/repomanager"
)

// allowedFileTypes is the MIME allow-list for certificate uploads. The
// check precedes any payload inspection; declared type is what counts.
var allowedFileTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
}

// CertificateService handles certificate upload, listing, file retrieval,
// and deletion, all scoped by the requester's owner token.
//
// No server-side file size cap is enforced: the front end pre-checks 10 MB
// before sending and the server trusts it. Known gap, kept deliberately.
type CertificateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCertificateService constructs a CertificateService.
func NewCertificateService(db *sql.DB, m repomanager.RepositoryManager) *CertificateService {
	return &CertificateService{db: db, repomanager: m}
}

// CertificateUpload is an upload request before validation. FileData is the
// base64-encoded file content as sent by the client.
type CertificateUpload struct {
	Name       string
	Issuer     string
	Date       string
	Credential string
	FileName   string
	FileType   string
	FileData   string
}

// Upload validates the metadata and file, decodes the payload, and persists
// the certificate under the owner token. Returns the generated id.
func (s *CertificateService) Upload(ctx context.Context, req CertificateUpload, owner identity.OwnerToken) (int64, error) {
	if req.Name == "" || req.Issuer == "" || req.Date == "" || req.FileData == "" {
		return 0, common.NewValidationError("Missing required fields: name, issuer, date, and file are required")
	}

	if _, ok := allowedFileTypes[req.FileType]; !ok {
		return 0, common.NewValidationError("File type not supported. Only PDF, JPEG, and PNG files are allowed.")
	}

	data, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return 0, common.NewValidationError("Invalid file data format")
	}

	cert := &models.Certificate{
		Name:       req.Name,
		Issuer:     req.Issuer,
		Date:       req.Date,
		Credential: req.Credential,
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileData:   data,
		OwnerToken: string(owner),
	}

	repo := s.repomanager.Certificates(s.db)
	if err := repo.Create(ctx, cert); err != nil {
		return 0, fmt.Errorf("error creating certificate: %w", err)
	}

	return cert.ID, nil
}

// List returns the owner's certificates, newest first, without file blobs.
func (s *CertificateService) List(ctx context.Context, owner identity.OwnerToken) ([]*models.Certificate, error) {
	repo := s.repomanager.Certificates(s.db)
	certs, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}
	return certs, nil
}

// GetFile returns the stored file for id when the owner token matches;
// common.ErrorNotFound otherwise.
func (s *CertificateService) GetFile(ctx context.Context, id int64, owner identity.OwnerToken) (*models.CertificateFile, error) {
	repo := s.repomanager.Certificates(s.db)
	file, err := repo.GetFile(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// Delete hard-deletes the certificate for id when the owner token matches;
// common.ErrorNotFound otherwise.
func (s *CertificateService) Delete(ctx context.Context, id int64, owner identity.OwnerToken) error {
	repo := s.repomanager.Certificates(s.db)
	return repo.Delete(ctx, id, owner)
}
