package results

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository stores classifier results. List is newest first.
type Repository interface {
	Create(ctx context.Context, r *models.ProfileResult) error
	List(ctx context.Context) ([]models.ProfileResult, error)
}
