package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/cryptox"
	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

const strongPasswordSymbols = "@$!%*?&"

// AccountService serves the signed-in user's own profile, history and
// password.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	captcha     captcha.Verifier
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cv captcha.Verifier) *AccountService {
	return &AccountService{db: db, repomanager: m, captcha: cv}
}

// UpdateProfile changes the full name and, when one is given, the
// password. Nothing changed records nothing.
func (s *AccountService) UpdateProfile(ctx context.Context, user *models.User, fullName, password, captchaToken, remoteIP string) error {
	if captchaToken == "" {
		return fail(common.ErrorValidation, MsgCaptchaRequired)
	}
	if err := checkCaptcha(ctx, s.captcha, captchaToken, remoteIP, fail(common.ErrorValidation, MsgCaptchaFailed)); err != nil {
		return err
	}

	name := strings.TrimSpace(fullName)
	nameChanged := name != "" && name != user.FullName

	var hash []byte
	if password != "" {
		var err error
		if hash, err = cryptox.HashPassword([]byte(password)); err != nil {
			return err
		}
	}

	if !nameChanged && hash == nil {
		return nil
	}
	if !nameChanged {
		name = user.FullName
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		at := now()
		if err := s.repomanager.Users(tx).UpdateProfile(ctx, user.ID, name, hash, at); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return s.repomanager.Activities(tx).Create(ctx, &models.Activity{
			UserID:    user.ID,
			Action:    models.ActionProfileUpdated,
			Details:   "You updated your profile.",
			Timestamp: at,
		})
	})
}

// History lists the user's activity, newest first.
func (s *AccountService) History(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.repomanager.Activities(s.db).ListByUser(ctx, userID)
}

// UpdatePassword lets an admin change their own password.
func (s *AccountService) UpdatePassword(ctx context.Context, user *models.User, current, next string) error {
	if current == "" || next == "" {
		return fail(common.ErrorValidation, MsgPasswordFields)
	}
	if user.Role != common.RoleAdmin {
		return fail(common.ErrorForbidden, MsgUnauthorizedAccess)
	}
	if len(user.PasswordHash) == 0 || cryptox.ComparePassword(user.PasswordHash, []byte(current)) != nil {
		return fail(common.ErrorValidation, MsgCurrentPasswordBad)
	}
	if !strongPassword(next) {
		return fail(common.ErrorValidation, MsgWeakPassword)
	}

	hash, err := cryptox.HashPassword([]byte(next))
	if err != nil {
		return err
	}
	return s.repomanager.Users(s.db).UpdatePassword(ctx, user.ID, hash)
}

// strongPassword requires eight or more characters drawn from letters,
// digits and @$!%*?&, with at least one of each class.
func strongPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(strongPasswordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return upper && lower && digit && symbol
}
