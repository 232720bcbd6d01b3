// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/migrations"
	"github.com/instaguard/instaguard/internal/server/repositories/activities"
	"github.com/instaguard/instaguard/internal/server/repositories/contacts"
	"github.com/instaguard/instaguard/internal/server/repositories/feedback"
	"github.com/instaguard/instaguard/internal/server/repositories/reports"
	"github.com/instaguard/instaguard/internal/server/repositories/results"
	"github.com/instaguard/instaguard/internal/server/repositories/settings"
	"github.com/instaguard/instaguard/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Activities(db dbx.DBTX) activities.Repository {
	return activities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Reports(db dbx.DBTX) reports.Repository {
	return reports.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Results(db dbx.DBTX) results.Repository {
	return results.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Feedback(db dbx.DBTX) feedback.Repository {
	return feedback.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Contacts(db dbx.DBTX) contacts.Repository {
	return contacts.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
