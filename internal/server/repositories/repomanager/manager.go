package repomanager

import (
	"context"
	"database/sql"

	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/repositories/activities"
	"github.com/instaguard/instaguard/internal/server/repositories/contacts"
	"github.com/instaguard/instaguard/internal/server/repositories/feedback"
	"github.com/instaguard/instaguard/internal/server/repositories/reports"
	"github.com/instaguard/instaguard/internal/server/repositories/results"
	"github.com/instaguard/instaguard/internal/server/repositories/settings"
	"github.com/instaguard/instaguard/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the pool or a
// transaction, so services can group writes with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Activities(db dbx.DBTX) activities.Repository
	Reports(db dbx.DBTX) reports.Repository
	Results(db dbx.DBTX) results.Repository
	Feedback(db dbx.DBTX) feedback.Repository
	Settings(db dbx.DBTX) settings.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
