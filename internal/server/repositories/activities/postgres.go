package activities

import (
	"context"
	"fmt"

	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Activity) error {
	query :=
		`INSERT INTO activity_history (user_id, action, details, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, a.UserID, a.Action, a.Details, a.Timestamp).Scan(&a.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the user's history, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	query :=
		`SELECT id, user_id, action, details, created_at FROM activity_history
		 WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.Details, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
