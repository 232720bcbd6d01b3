package settings

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository keeps the singleton site settings.
//
// Contract:
//   - GetOrCreate stores def when no settings exist yet and returns what is stored.
//   - Save upserts s and reports whether anything changed.
type Repository interface {
	GetOrCreate(ctx context.Context, def models.Settings) (*models.Settings, error)
	Save(ctx context.Context, s models.Settings) (bool, error)
}
