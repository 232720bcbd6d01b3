package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/instaguard/instaguard/internal/client/models"
)

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	var out models.UserList
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) (string, error) {
	return c.messageCall(ctx, http.MethodDelete, "/api/delete-user/"+url.PathEscape(id), true, nil)
}

func (c *HTTPClient) Analytics(ctx context.Context) (*models.Analytics, error) {
	var out models.Analytics
	if err := c.do(ctx, http.MethodGet, "/api/admin/analytics", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RecentActivities(ctx context.Context) ([]models.RecentActivity, error) {
	var out models.RecentActivities
	if err := c.do(ctx, http.MethodGet, "/api/admin/recent-activities", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Activities, nil
}

func (c *HTTPClient) Settings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/api/admin/settings", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSettings(ctx context.Context, s models.Settings) (string, error) {
	return c.messageCall(ctx, http.MethodPost, "/api/admin/settings", true, s)
}

func (c *HTTPClient) Export(ctx context.Context, kind string) (*models.ExportLink, error) {
	var out models.ExportLink
	if err := c.do(ctx, http.MethodPost, "/api/admin/export/"+url.PathEscape(kind), true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
