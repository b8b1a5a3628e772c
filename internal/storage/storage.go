// Package storage is the data-access layer shared by every repository. It hides whether the process
// talks to an embedded SQLite file or a PostgreSQL server behind one query interface.
package storage

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=storage

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// ErrNoRows is returned by Row.Scan when the query matched nothing, whatever the backend.
var ErrNoRows = errors.New("no rows in result set")

// Result is the normalized outcome of Execute.
type Result struct {
	RowsAffected int64
	InsertedID   int64
}

type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Adapter runs queries written with positional `?` placeholders.
type Adapter interface {
	Execute(ctx context.Context, query string, args ...any) (Result, error)
	FetchOne(ctx context.Context, query string, args ...any) Row
	FetchAll(ctx context.Context, query string, args ...any) (Rows, error)
	ExecDDL(ctx context.Context, ddl string) error
	Dialect() Dialect
	Namespace() string
}

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn inside a single transaction carried by the context. A nested Begin joins the
// transaction already present in ctx.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

// Backend is everything the application needs from the selected database.
type Backend interface {
	Adapter
	TXManager
	Migrate(ctx context.Context, fsys fs.FS) error
	Close()
}

type Options struct {
	URL        string
	SQLitePath string
	Namespace  string
}

// IsPostgresURL reports whether a connection string selects the networked backend. Any string
// starting with "postgres" does, which covers both URL schemes.
func IsPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres")
}

// Open picks the backend from opts.URL and verifies the connection.
func Open(ctx context.Context, opts Options) (Backend, error) {
	if IsPostgresURL(opts.URL) {
		return OpenPostgres(ctx, opts.URL, opts.Namespace)
	}
	return OpenSQLite(ctx, opts.SQLitePath)
}
