package feedback

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

func (r *PostgresRepository) Create(ctx context.Context, f *models.Feedback) error {
	query :=
		`INSERT INTO feedback (user_id, impression, comment, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, f.UserID, f.Impression, f.Comment, f.Timestamp).Scan(&f.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListWithAuthors(ctx context.Context) ([]models.Feedback, error) {
	query :=
		`SELECT f.id, f.user_id, COALESCE(u.fullname, ''), COALESCE(u.email, ''), f.impression, f.comment, f.created_at
		 FROM feedback f LEFT JOIN users u ON u.id = f.user_id
		 ORDER BY f.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Email, &f.Impression, &f.Comment, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
