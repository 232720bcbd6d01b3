package client

import (
	"context"
	"net/http"

	"github.com/instaguard/instaguard/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", false, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GoogleSignIn(ctx context.Context, req models.GoogleSignInRequest) (*models.GoogleSignInResponse, error) {
	var out models.GoogleSignInResponse
	if err := c.do(ctx, http.MethodPost, "/google-signin", false, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	return c.messageCall(ctx, http.MethodPost, "/signup", false, req)
}

func (c *HTTPClient) UserInfo(ctx context.Context) (*models.UserInfo, error) {
	var out models.UserInfo
	if err := c.do(ctx, http.MethodGet, "/api/user-info", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) (string, error) {
	return c.messageCall(ctx, http.MethodPut, "/api/update-password", true, req)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/user/profile", true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (string, error) {
	return c.messageCall(ctx, http.MethodPut, "/user/profile", true, req)
}

func (c *HTTPClient) History(ctx context.Context) ([]models.Activity, error) {
	var out models.HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/user/history", true, nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *HTTPClient) Contact(ctx context.Context, req models.ContactRequest) (string, error) {
	return c.messageCall(ctx, http.MethodPost, "/contact", false, req)
}
