// Package services contains server-side business logic. Each service works
// on repositories obtained from a RepositoryManager and reports failures the
// caller should see as *Error.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/cryptox"
	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server/auth"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/config"
	"github.com/instaguard/instaguard/internal/server/mailer"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	verificationTokenValidity = time.Hour
	verificationTokenBytes    = 32
)

var now = func() time.Time { return time.Now().UTC() }

// GoogleTokenVerifier checks a Google ID token.
//
// Contract:
//   - Verify returns common.ErrInvalidToken (possibly wrapped) for tokens
//     that fail verification and auth.ErrGoogleEmailMissing when the token
//     carries no email.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

// SignupInput is a signup form as submitted.
type SignupInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Mobile          string
	Captcha         string
	RemoteIP        string
}

// LoginResult is what a password login hands back.
type LoginResult struct {
	Token string
	Role  string
}

// GoogleResult is what a Google sign-in hands back.
type GoogleResult struct {
	AccessToken  string
	RefreshToken string
	Role         string
}

// AuthService handles signup, email verification, both login flows and
// bearer token authentication.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	captcha     captcha.Verifier
	google      GoogleTokenVerifier
	mailer      mailer.Mailer
	logger      logging.Logger

	jwtSecret       []byte
	accessValidity  time.Duration
	googleValidity  time.Duration
	refreshValidity time.Duration
	publicURL       string
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config,
	cv captcha.Verifier, gv GoogleTokenVerifier, ml mailer.Mailer, l logging.Logger) *AuthService {
	return &AuthService{
		db:              db,
		repomanager:     m,
		captcha:         cv,
		google:          gv,
		mailer:          ml,
		logger:          l,
		jwtSecret:       []byte(cfg.SecretKey),
		accessValidity:  cfg.AccessTokenValidity,
		googleValidity:  cfg.GoogleAccessTokenValidity,
		refreshValidity: cfg.RefreshTokenValidity,
		publicURL:       cfg.PublicURL,
	}
}

// checkCaptcha turns a rejected token into the form error and lets other
// failures through as internal errors.
func checkCaptcha(ctx context.Context, v captcha.Verifier, token, ip string, rejected error) error {
	err := v.Verify(ctx, token, ip)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, captcha.ErrFailed):
		return rejected
	default:
		return fmt.Errorf("captcha: %w", err)
	}
}

// Signup creates an unverified account and mails its verification link.
// A failed email is logged; the account stays.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	if err := checkCaptcha(ctx, s.captcha, in.Captcha, in.RemoteIP, errCaptcha); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)

	if fullName == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" || strings.TrimSpace(in.Mobile) == "" {
		return fail(common.ErrorValidation, MsgSignupFields)
	}
	if in.Password != in.ConfirmPassword {
		return fail(common.ErrorValidation, MsgPasswordsDiffer)
	}
	if !emailPattern.MatchString(email) {
		return fail(common.ErrorValidation, MsgInvalidEmail)
	}

	hash, err := cryptox.HashPassword([]byte(in.Password))
	if err != nil {
		return err
	}

	token, err := common.MakeRandHexString(verificationTokenBytes)
	if err != nil {
		return err
	}
	expiry := now().Add(verificationTokenValidity)
	user := &models.User{
		FullName:                fullName,
		Email:                   email,
		PasswordHash:            hash,
		Mobile:                  strings.TrimSpace(in.Mobile),
		Role:                    common.RoleUser,
		VerificationToken:       &token,
		VerificationTokenExpiry: &expiry,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		return s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			UserID:    created.ID,
			Action:    models.ActionSignedUp,
			Details:   fmt.Sprintf("Welcome %s, your account was created successfully.", fullName),
			Timestamp: now(),
		})
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fail(common.ErrorAlreadyExists, MsgEmailTaken)
		}
		return fmt.Errorf("create user: %w", err)
	}

	if err := s.mailer.Send(ctx, mailer.Verification(email, s.publicURL, token)); err != nil {
		s.logger.Error(ctx, "verification email failed", "email", email, "error", err)
	}

	return nil
}

// VerifyEmail marks the account holding token as verified.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	invalid := fail(common.ErrorValidation, MsgInvalidVerifyToken)
	if token == "" {
		return invalid
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return invalid
		}
		return err
	}
	if user.VerificationTokenExpiry == nil || user.VerificationTokenExpiry.Before(now()) {
		return invalid
	}

	return repo.MarkVerified(ctx, user.ID)
}

// Login checks email and password and issues an access token carrying the
// user's role.
func (s *AuthService) Login(ctx context.Context, email, password, captchaToken, remoteIP string) (*LoginResult, error) {
	if err := checkCaptcha(ctx, s.captcha, captchaToken, remoteIP, errCaptcha); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fail(common.ErrorValidation, MsgLoginFields)
	}

	users := s.repomanager.Users(s.db)

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	if !user.IsVerified {
		return nil, fail(common.ErrorForbidden, MsgVerifyEmailFirst)
	}
	// Google-only accounts have no password to match.
	if len(user.PasswordHash) == 0 || cryptox.ComparePassword(user.PasswordHash, []byte(password)) != nil {
		return nil, errWrongPassword
	}

	token, err := auth.GenerateToken(identity(user), s.jwtSecret, s.accessValidity)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdateLastLogin(ctx, user.ID, now()); err != nil {
			return err
		}
		return s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			UserID:    user.ID,
			Action:    models.ActionLoggedIn,
			Details:   "You logged in recently.",
			Timestamp: now(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}

	return &LoginResult{Token: token, Role: roleOf(user)}, nil
}

// GoogleSignIn verifies a Google ID token, creating a verified account on
// first use, and issues an access and refresh token.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken, captchaToken, remoteIP string) (*GoogleResult, error) {
	// the browser flow sends a captcha only when the widget was shown
	if captchaToken != "" {
		if err := checkCaptcha(ctx, s.captcha, captchaToken, remoteIP, errCaptcha); err != nil {
			return nil, err
		}
	}
	if idToken == "" {
		return nil, fail(common.ErrorValidation, MsgMissingGoogleToken)
	}

	gid, err := s.google.Verify(ctx, idToken)
	if err != nil {
		if errors.Is(err, auth.ErrGoogleEmailMissing) {
			return nil, fail(common.ErrorValidation, MsgGoogleEmailMissing)
		}
		s.logger.Warn(ctx, "google token rejected", "error", err)
		return nil, fail(common.ErrorUnauthorized, MsgInvalidGoogleToken)
	}
	email := strings.ToLower(gid.Email)

	var (
		user   *models.User
		result GoogleResult
	)
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)
		at := now()

		var err error
		user, err = users.GetByEmail(ctx, email)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			user, err = users.Create(ctx, &models.User{
				FullName:   gid.Name,
				Email:      email,
				Role:       common.RoleUser,
				IsVerified: true,
				LastLogin:  &at,
			})
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := users.UpdateLastLogin(ctx, user.ID, at); err != nil {
				return err
			}
		}

		id := identity(user)
		if result.AccessToken, err = auth.GenerateToken(id, s.jwtSecret, s.googleValidity); err != nil {
			return err
		}
		if result.RefreshToken, err = auth.GenerateRefreshToken(user.ID, s.jwtSecret, s.refreshValidity); err != nil {
			return err
		}
		if err := users.SetRefreshToken(ctx, user.ID, result.RefreshToken); err != nil {
			return err
		}

		return s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			UserID:    user.ID,
			Action:    models.ActionGoogleSignIn,
			Details:   fmt.Sprintf("%s Logged in using Google OAuth.", user.FullName),
			Timestamp: at,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("google sign-in: %w", err)
	}

	result.Role = roleOf(user)
	return &result, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, fail(common.ErrorUnauthorized, MsgMissingToken)
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, fail(common.ErrorUnauthorized, MsgTokenExpired)
		}
		return nil, fail(common.ErrorUnauthorized, MsgInvalidToken)
	}
	if claims.IsRefresh() {
		return nil, fail(common.ErrorUnauthorized, MsgInvalidToken)
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fail(common.ErrorUnauthorized, MsgInvalidToken)
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fail(common.ErrorUnauthorized, MsgTokenUserNotFound)
		}
		return nil, err
	}
	return user, nil
}

func identity(u *models.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Email: u.Email, Role: roleOf(u)}
}

func roleOf(u *models.User) string {
	if u.Role == "" {
		return common.RoleUser
	}
	return u.Role
}
