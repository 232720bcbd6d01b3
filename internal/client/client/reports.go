package client

import (
	"context"
	"net/http"

	"github.com/instaguard/instaguard/internal/client/models"
)

func (c *HTTPClient) CreateReport(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	var out models.Report
	if err := c.do(ctx, http.MethodPost, "/reports", true, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Reports(ctx context.Context) ([]models.Report, error) {
	return c.reportList(ctx, "/reports")
}

func (c *HTTPClient) MyReports(ctx context.Context) ([]models.Report, error) {
	return c.reportList(ctx, "/my-reports")
}

func (c *HTTPClient) AdminReports(ctx context.Context) ([]models.Report, error) {
	return c.reportList(ctx, "/admin-reports")
}

func (c *HTTPClient) reportList(ctx context.Context, path string) ([]models.Report, error) {
	out := []models.Report{}
	if err := c.do(ctx, http.MethodGet, path, true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
