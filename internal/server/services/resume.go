package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sharandeepreddy/pf/internal/server/config"
	"github.com/sharandeepreddy/pf/internal/server/models"
	"github.com/sharandeepreddy/pf/internal/server/repositories/repomanager"
)

// ResumeService records resume downloads and hands out the public URL of
// the static resume file.
type ResumeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resumeURL   string
}

// NewResumeService constructs a ResumeService using server config.
func NewResumeService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ResumeService {
	return &ResumeService{db: db, repomanager: m, resumeURL: cfg.ResumeURL}
}

// RecordDownload persists one download record and returns the resume URL.
func (s *ResumeService) RecordDownload(ctx context.Context, client models.ClientInfo) (string, error) {
	dl := &models.ResumeDownload{
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Referrer:  client.Referrer,
	}

	repo := s.repomanager.ResumeDownloads(s.db)
	if err := repo.Create(ctx, dl); err != nil {
		return "", fmt.Errorf("error recording resume download: %w", err)
	}

	return s.resumeURL, nil
}
