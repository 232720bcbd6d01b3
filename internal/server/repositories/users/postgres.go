package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/models"
)

const uniqueViolation = "23505"

const userColumns = `id, fullname, email, password_hash, mobile, role, is_verified,
		verification_token, verification_token_expiry, refresh_token,
		created_at, last_login, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(s dbx.Scanner) (*models.User, error) {
	u := &models.User{}
	err := s.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Mobile, &u.Role, &u.IsVerified,
		&u.VerificationToken, &u.VerificationTokenExpiry, &u.RefreshToken,
		&u.CreatedAt, &u.LastLogin, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (fullname, email, password_hash, mobile, role, is_verified,
		     verification_token, verification_token_expiry, last_login)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.Mobile, user.Role, user.IsVerified,
		user.VerificationToken, user.VerificationTokenExpiry, user.LastLogin,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, dbx.NotFound(err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *PostgresRepository) GetByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, "verification_token = $1", token)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.RequireAffected(res)
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, id string) error {
	return r.exec(ctx,
		`UPDATE users SET is_verified = TRUE, verification_token = NULL, verification_token_expiry = NULL
		 WHERE id = $1`, id)
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
}

func (r *PostgresRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return r.exec(ctx, `UPDATE users SET refresh_token = $2 WHERE id = $1`, id, token)
}

// UpdateProfile sets the full name and, when passwordHash is non-nil, the
// password.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, fullName string, passwordHash []byte, at time.Time) error {
	return r.exec(ctx,
		`UPDATE users SET fullname = $2, password_hash = COALESCE($3, password_hash), updated_at = $4
		 WHERE id = $1`, id, fullName, passwordHash, at)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id string, passwordHash []byte) error {
	return r.exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at`, role)
}

// Recent returns the newest accounts. An empty role matches every account.
func (r *PostgresRepository) Recent(ctx context.Context, role string, limit int) ([]models.User, error) {
	return r.list(ctx,
		`SELECT `+userColumns+` FROM users WHERE ($1 = '' OR role = $1)
		 ORDER BY created_at DESC LIMIT $2`, role, limit)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) CountByRole(ctx context.Context, role string, verifiedOnly bool) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM users WHERE role = $1 AND ($2 = FALSE OR is_verified)`,
		role, verifiedOnly).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
