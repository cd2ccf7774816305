package resumedownloads

import (
	"context"

	"github.com/sharandeepreddy/pf/internal/server/models"
)

// Repository records resume download requests.
type Repository interface {
	Create(ctx context.Context, dl *models.ResumeDownload) error
}
