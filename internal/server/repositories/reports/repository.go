package reports

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository stores reports of suspected fake profiles. Lists are newest
// first.
type Repository interface {
	Create(ctx context.Context, r *models.Report) error
	ListByEmail(ctx context.Context, email string) ([]models.Report, error)
	ListAll(ctx context.Context) ([]models.Report, error)
	Recent(ctx context.Context, limit int) ([]models.Report, error)
	Count(ctx context.Context, status string) (int, error)
}
