package results

import (
	"context"
	"encoding/json"
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

// Create stores r. Features are kept as a JSONB object keyed by column name.
func (r *PostgresRepository) Create(ctx context.Context, res *models.ProfileResult) error {
	features := res.Features
	if features == nil {
		features = map[string]float64{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}

	query :=
		`INSERT INTO profile_results (user_id, username, features, prediction, model_version, confidence, created_at, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`

	err = r.db.QueryRowContext(ctx, query,
		res.UserID, res.Username, raw, res.Prediction, res.ModelVersion, res.Confidence, res.Timestamp, res.Note,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.ProfileResult, error) {
	query :=
		`SELECT id, user_id, username, features, prediction, model_version, confidence, created_at, note
		 FROM profile_results ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.ProfileResult
	for rows.Next() {
		var (
			res models.ProfileResult
			raw []byte
		)
		if err := rows.Scan(&res.ID, &res.UserID, &res.Username, &raw, &res.Prediction,
			&res.ModelVersion, &res.Confidence, &res.Timestamp, &res.Note); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &res.Features); err != nil {
				return nil, fmt.Errorf("decode features of %s: %w", res.ID, err)
			}
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
