package client

import (
	"context"
	"net/http"

	"github.com/instaguard/instaguard/internal/client/models"
)

func (c *HTTPClient) SubmitFeedback(ctx context.Context, req models.FeedbackRequest) (string, error) {
	return c.messageCall(ctx, http.MethodPost, "/feedback", true, req)
}

func (c *HTTPClient) AdminFeedback(ctx context.Context) ([]models.Feedback, error) {
	var out models.FeedbackList
	if err := c.do(ctx, http.MethodGet, "/api/admin/feedback", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Feedback, nil
}
