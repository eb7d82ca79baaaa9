// Package dbx provides the small database/sql abstractions shared by the
// repositories: a handle that is either a pool or a transaction, and helpers
// to run work inside a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is the unit of work executed by WithTx.
type TxFunc func(ctx context.Context, tx DBTX) error

// WithTx begins a transaction, runs fn with it, and commits on success.
// It rolls back when fn returns an error or panics; panics are re-raised.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
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

// Transactor runs a TxFunc atomically. Services depend on it instead of
// *sql.DB so that stores without SQL transactions can plug in.
type Transactor interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// SQLTransactor runs units of work in database/sql transactions.
type SQLTransactor struct {
	db *sql.DB
}

func NewSQLTransactor(db *sql.DB) *SQLTransactor {
	return &SQLTransactor{db: db}
}

func (t *SQLTransactor) WithinTx(ctx context.Context, fn TxFunc) error {
	return WithTx(ctx, t.db, nil, fn)
}

// DirectTransactor calls fn with a nil handle. It is used with stores that
// guarantee atomicity per call on their own (the in-memory store).
type DirectTransactor struct{}

func (DirectTransactor) WithinTx(ctx context.Context, fn TxFunc) error {
	return fn(ctx, nil)
}
