// Package database defines the narrow SQL surface the repositories and
// seeders run against. The pgx pool in database/postgres implements it.
package database

import (
	"context"
	"database/sql"
)

type DB interface {
	Ping(ctx context.Context) error
	Close() error

	// Exec returns the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	// SQLDB exposes a database/sql view of the same pool for migrations.
	SQLDB() *sql.DB
}

// Tx is the write-only transaction the seeders batch their inserts in.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Rows and Row are satisfied by pgx.Rows and pgx.Row as-is.
type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// Row reports pgx.ErrNoRows from Scan when the query matched nothing.
type Row interface {
	Scan(dest ...any) error
}
