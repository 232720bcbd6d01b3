package client

import (
	"context"
	"net/http"

	"github.com/instaguard/instaguard/internal/client/models"
)

func (c *HTTPClient) Predict(ctx context.Context, username string) (*models.Prediction, error) {
	var out models.Prediction
	if err := c.do(ctx, http.MethodPost, "/predict", true, models.PredictRequest{Username: username}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckProfile classifies a hand-entered feature vector. It needs no token.
func (c *HTTPClient) CheckProfile(ctx context.Context, req models.FeatureCheckRequest) (*models.FeatureCheck, error) {
	var out models.FeatureCheck
	if err := c.do(ctx, http.MethodPost, "/check-instagram-profile", false, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ProfileResults(ctx context.Context) ([]models.ProfileResult, error) {
	out := []models.ProfileResult{}
	if err := c.do(ctx, http.MethodGet, "/admin/profile-results", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
