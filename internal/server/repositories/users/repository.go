package users

import (
	"context"
	"time"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository persists user accounts.
//
// Contract:
//   - Lookups return common.ErrorNotFound when no row matches.
//   - Create returns common.ErrorAlreadyExists for a duplicate email.
//   - Updates and Delete return common.ErrorNotFound when no row was affected.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.User, error)
	MarkVerified(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	SetRefreshToken(ctx context.Context, id, token string) error
	UpdateProfile(ctx context.Context, id, fullName string, passwordHash []byte, at time.Time) error
	UpdatePassword(ctx context.Context, id string, passwordHash []byte) error
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role string, verifiedOnly bool) (int, error)
	Recent(ctx context.Context, role string, limit int) ([]models.User, error)
}
