package settings

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

func (r *PostgresRepository) GetOrCreate(ctx context.Context, def models.Settings) (*models.Settings, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, site_name, support_email, notify_reports, maintenance_mode)
		 VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		def.SiteName, def.SupportEmail, def.NotifyReports, def.MaintenanceMode)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	s := &models.Settings{}
	err = r.db.QueryRowContext(ctx,
		`SELECT site_name, support_email, notify_reports, maintenance_mode FROM settings WHERE id = 1`,
	).Scan(&s.SiteName, &s.SupportEmail, &s.NotifyReports, &s.MaintenanceMode)
	if err != nil {
		return nil, dbx.NotFound(err)
	}
	return s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, s models.Settings) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, site_name, support_email, notify_reports, maintenance_mode)
		 VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET
		     site_name = EXCLUDED.site_name,
		     support_email = EXCLUDED.support_email,
		     notify_reports = EXCLUDED.notify_reports,
		     maintenance_mode = EXCLUDED.maintenance_mode
		 WHERE (settings.site_name, settings.support_email, settings.notify_reports, settings.maintenance_mode)
		     IS DISTINCT FROM (EXCLUDED.site_name, EXCLUDED.support_email, EXCLUDED.notify_reports, EXCLUDED.maintenance_mode)`,
		s.SiteName, s.SupportEmail, s.NotifyReports, s.MaintenanceMode)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
