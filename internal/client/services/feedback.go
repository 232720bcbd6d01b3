package services

import (
	"context"
	"strings"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
)

type FeedbackService interface {
	Submit(ctx context.Context, req models.FeedbackRequest) (string, error)
	List(ctx context.Context) ([]models.Feedback, error)
	Contact(ctx context.Context, req models.ContactRequest) (string, error)
}

type feedbackService struct {
	guard
}

func NewFeedbackService(c client.Client, store session.Repository) FeedbackService {
	return &feedbackService{guard: guard{client: c, store: store}}
}

func (s *feedbackService) Submit(ctx context.Context, req models.FeedbackRequest) (string, error) {
	if err := forms.Feedback(req); err != nil {
		return "", err
	}
	req.Feedback = strings.TrimSpace(req.Feedback)

	return guarded(ctx, s.guard, func(ctx context.Context) (string, error) {
		return s.client.SubmitFeedback(ctx, req)
	})
}

func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return guarded(ctx, s.guard, s.client.AdminFeedback)
}

// Contact goes through without a session.
func (s *feedbackService) Contact(ctx context.Context, req models.ContactRequest) (string, error) {
	if err := forms.Contact(req); err != nil {
		return "", err
	}
	return s.client.Contact(ctx, req)
}
