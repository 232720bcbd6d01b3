package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFactories_ReturnRepos(t *testing.T) {
	db := newDB(t)
	m := NewPostgresRepositoryManager()

	assert.NotNil(t, m.Users(db))
	assert.NotNil(t, m.Activities(db))
	assert.NotNil(t, m.Reports(db))
	assert.NotNil(t, m.Results(db))
	assert.NotNil(t, m.Feedback(db))
	assert.NotNil(t, m.Settings(db))
	assert.NotNil(t, m.Contacts(db))
}

func TestRunMigrations_Success(t *testing.T) {
	db := newDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	assert.Equal(t, ".", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	db := newDB(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	assert.EqualError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db), "boom")
}
