package reports

import (
	"context"
	"fmt"

	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/models"
)

const reportColumns = `id, username, reason, status, date_reported, user_email`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rep *models.Report) error {
	query :=
		`INSERT INTO reports (username, reason, status, date_reported, user_email)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		rep.Username, rep.Reason, rep.Status, rep.DateReported, rep.UserEmail).Scan(&rep.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Report
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.Username, &rep.Reason, &rep.Status, &rep.DateReported, &rep.UserEmail); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]models.Report, error) {
	return r.list(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE user_email = $1 ORDER BY date_reported DESC`, email)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Report, error) {
	return r.list(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY date_reported DESC`)
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.Report, error) {
	return r.list(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY date_reported DESC LIMIT $1`, limit)
}

// Count returns the number of reports with the given status, or of all
// reports when status is empty.
func (r *PostgresRepository) Count(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM reports WHERE ($1 = '' OR status = $1)`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
