// Package dbx holds the small database/sql abstractions shared by the
// Postgres repositories on the server and the SQLite session store on the
// client.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/instaguard/instaguard/internal/common"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a repository can run
// either standalone or inside WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is the common part of *sql.Row and *sql.Rows, letting a
// repository share one scan function between single-row and list queries.
type Scanner interface {
	Scan(dest ...any) error
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are re-raised after the rollback.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// NotFound converts sql.ErrNoRows into common.ErrorNotFound and wraps any
// other error as a db error.
func NotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

// RequireAffected returns common.ErrorNotFound when res reports zero
// affected rows.
func RequireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
