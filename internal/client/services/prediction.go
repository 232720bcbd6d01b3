package services

import (
	"context"
	"strings"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
)

type PredictionService interface {
	ByUsername(ctx context.Context, username string) (*models.Prediction, error)
	ByFeatures(ctx context.Context, req models.FeatureCheckRequest) (*models.FeatureCheck, error)
}

type predictionService struct {
	guard
	needCaptcha bool
}

func NewPredictionService(c client.Client, store session.Repository, needCaptcha bool) PredictionService {
	return &predictionService{guard: guard{client: c, store: store}, needCaptcha: needCaptcha}
}

// ByUsername asks the backend to classify an Instagram username. Usernames
// are case-insensitive, so the lowered form is sent.
func (s *predictionService) ByUsername(ctx context.Context, username string) (*models.Prediction, error) {
	if err := forms.Predict(username); err != nil {
		return nil, err
	}
	username = strings.ToLower(strings.TrimSpace(username))

	return guarded(ctx, s.guard, func(ctx context.Context) (*models.Prediction, error) {
		return s.client.Predict(ctx, username)
	})
}

// ByFeatures needs no session.
func (s *predictionService) ByFeatures(ctx context.Context, req models.FeatureCheckRequest) (*models.FeatureCheck, error) {
	if err := forms.FeatureCheck(req, s.needCaptcha); err != nil {
		return nil, err
	}
	return s.client.CheckProfile(ctx, req)
}
