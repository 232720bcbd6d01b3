package contacts

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

func (r *PostgresRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	query :=
		`INSERT INTO contact_messages (name, email, message, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, m.Name, m.Email, m.Message, m.CreatedAt).Scan(&m.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
