// Package session persists the logged-in state of the terminal client on
// top of the metadata key/value table.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/metadata"
	"github.com/instaguard/instaguard/internal/dbx"
)

var ErrNoSession = errors.New("no stored session")

const (
	keyToken            = "token"
	keyRefreshToken     = "refresh_token"
	keyRole             = "role"
	keyLoginTime        = "login_time"
	keyAuthMethod       = "auth_method"
	keyProfileUpdatedAt = "profile_updated_at"
)

type Repository interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
	MarkProfileUpdated(ctx context.Context, at time.Time) error
	ProfileUpdatedAt(ctx context.Context) (time.Time, error)
}

// newMetadataRepo is swapped in tests.
var newMetadataRepo = func(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save replaces the stored session. All keys are written in one
// transaction so a crash never leaves a token without its role.
func (r *SQLiteRepository) Save(ctx context.Context, s models.Session) error {
	values := map[string]string{
		keyToken:        s.Token,
		keyRefreshToken: s.RefreshToken,
		keyRole:         s.Role,
		keyAuthMethod:   s.AuthMethod,
		keyLoginTime:    s.LoginTime.UTC().Format(time.RFC3339),
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := newMetadataRepo(tx)
		for k, v := range values {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns ErrNoSession when no token is stored.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	m, err := newMetadataRepo(r.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	token := string(m[keyToken])
	if token == "" {
		return nil, ErrNoSession
	}

	s := &models.Session{
		Token:        token,
		RefreshToken: string(m[keyRefreshToken]),
		Role:         string(m[keyRole]),
		AuthMethod:   string(m[keyAuthMethod]),
	}
	if raw := string(m[keyLoginTime]); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("load session: login time: %w", err)
		}
		s.LoginTime = t
	}
	return s, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if err := newMetadataRepo(r.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) MarkProfileUpdated(ctx context.Context, at time.Time) error {
	return newMetadataRepo(r.db).Set(ctx, keyProfileUpdatedAt, []byte(at.UTC().Format(time.RFC3339)))
}

// ProfileUpdatedAt returns the zero time when the profile was never
// updated from this client.
func (r *SQLiteRepository) ProfileUpdatedAt(ctx context.Context) (time.Time, error) {
	raw, err := newMetadataRepo(r.db).Get(ctx, keyProfileUpdatedAt)
	if err != nil || raw == nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, string(raw))
}

var _ Repository = (*SQLiteRepository)(nil)
