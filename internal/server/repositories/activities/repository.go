package activities

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository stores the per-user activity history.
type Repository interface {
	Create(ctx context.Context, a *models.Activity) error
	ListByUser(ctx context.Context, userID string) ([]models.Activity, error)
}
