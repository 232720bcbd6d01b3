package contacts

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository stores messages from the public contact form.
type Repository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
}
