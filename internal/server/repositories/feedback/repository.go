package feedback

import (
	"context"

	"github.com/instaguard/instaguard/internal/server/models"
)

// Repository stores user feedback. ListWithAuthors fills Name and Email
// from the author's account, newest first.
type Repository interface {
	Create(ctx context.Context, f *models.Feedback) error
	ListWithAuthors(ctx context.Context) ([]models.Feedback, error)
}
