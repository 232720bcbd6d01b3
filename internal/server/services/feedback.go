package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

// FeedbackService collects user feedback for the admin dashboard.
type FeedbackService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFeedbackService(db *sql.DB, m repomanager.RepositoryManager) *FeedbackService {
	return &FeedbackService{db: db, repomanager: m}
}

// Submit stores feedback from author. The comment is optional.
func (s *FeedbackService) Submit(ctx context.Context, author *models.User, impression, comment string) error {
	impression = strings.TrimSpace(impression)
	if impression == "" {
		return fail(common.ErrorValidation, MsgImpressionRequired)
	}

	return s.repomanager.Feedback(s.db).Create(ctx, &models.Feedback{
		UserID:     author.ID,
		Impression: impression,
		Comment:    comment,
		Timestamp:  now(),
	})
}

// List returns all feedback with the author's name and email, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.repomanager.Feedback(s.db).ListWithAuthors(ctx)
}
