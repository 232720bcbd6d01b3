// Package services contains the application services of the InstaGuard
// terminal client. They validate input with the forms package, call the
// backend through client.Client and keep the local session in sync.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
	"github.com/instaguard/instaguard/internal/common"
)

// Route is the view a successful login lands on.
type Route int

const (
	RouteUserDashboard Route = iota
	RouteAdminDashboard
)

func (r Route) String() string {
	if r == RouteAdminDashboard {
		return "admin"
	}
	return "user"
}

// RouteFor maps a role to its dashboard. Anything but "admin", including
// an empty role, lands on the user dashboard.
func RouteFor(role string) Route {
	if role == common.RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteUserDashboard
}

// LoginResult is what the CLI needs after any successful sign-in.
type LoginResult struct {
	Route   Route
	Role    string
	Message string
}

var ErrEmptyToken = errors.New("login response carried no token")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login, LoginWithGoogle: authenticate, persist the session and return the route.
//   - Register: validate the signup form locally, then create the account.
//   - Restore: resume a stored session unless its token has expired.
//   - Logout: forget the stored session.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error)
	LoginWithGoogle(ctx context.Context, req models.GoogleSignInRequest) (*LoginResult, error)
	Register(ctx context.Context, req models.SignupRequest) (string, error)
	Restore(ctx context.Context) (*LoginResult, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client      client.Client
	store       session.Repository
	needCaptcha bool
}

// now is swapped in tests.
var now = time.Now

// NewAuthService builds an AuthService. needCaptcha makes the captcha
// field mandatory on the login and signup forms.
func NewAuthService(c client.Client, store session.Repository, needCaptcha bool) AuthService {
	return &authService{client: c, store: store, needCaptcha: needCaptcha}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error) {
	if err := forms.Login(req, a.needCaptcha); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrEmptyToken
	}

	s := models.Session{
		Token:      resp.Token,
		Role:       resp.Role,
		AuthMethod: models.AuthMethodPassword,
		LoginTime:  now(),
	}
	if err := a.begin(ctx, s); err != nil {
		return nil, err
	}
	return &LoginResult{Route: RouteFor(resp.Role), Role: resp.Role, Message: resp.Message}, nil
}

func (a *authService) LoginWithGoogle(ctx context.Context, req models.GoogleSignInRequest) (*LoginResult, error) {
	if req.IDToken == "" {
		return nil, fmt.Errorf("%w: no credential returned from Google", common.ErrorValidation)
	}

	resp, err := a.client.GoogleSignIn(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	s := models.Session{
		Token:        resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Role:         resp.Role,
		AuthMethod:   models.AuthMethodGoogle,
		LoginTime:    now(),
	}
	if err := a.begin(ctx, s); err != nil {
		return nil, err
	}
	return &LoginResult{Route: RouteFor(resp.Role), Role: resp.Role, Message: resp.Message}, nil
}

func (a *authService) begin(ctx context.Context, s models.Session) error {
	if err := a.store.Save(ctx, s); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	a.client.SetToken(s.Token)
	return nil
}

// Register sends nothing unless the form passes every local check.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) (string, error) {
	if err := forms.Signup(req, a.needCaptcha); err != nil {
		return "", err
	}
	return a.client.Signup(ctx, req)
}

// Restore returns session.ErrNoSession when nothing usable is stored. A
// token whose exp claim has passed is cleared on the way.
func (a *authService) Restore(ctx context.Context) (*LoginResult, error) {
	s, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if expired(s.Token, now()) {
		if err := a.store.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, session.ErrNoSession
	}

	a.client.SetToken(s.Token)
	return &LoginResult{Route: RouteFor(s.Role), Role: s.Role}, nil
}

// expired reads exp without verifying the signature; only the server can
// do that. Tokens that do not parse as JWTs are treated as expired.
func expired(token string, at time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	return claims.ExpiresAt != nil && !at.Before(claims.ExpiresAt.Time)
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return a.store.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
