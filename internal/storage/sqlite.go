package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteTxKey struct{}

type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLite wraps an already opened sqlite3 handle. SQLite allows a single writer, so the pool is
// limited to one connection and transactions serialize on it.
func NewSQLite(db *sql.DB) *SQLiteBackend {
	db.SetMaxOpenConns(1)
	return &SQLiteBackend{db: db}
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	backend := NewSQLite(db)
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	zap.L().Info("using sqlite backend", zap.String("path", path))
	return backend, nil
}

func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?" + sqliteParams
	}
	return "file:" + path + "?" + sqliteParams + "&_journal_mode=WAL"
}

func (b *SQLiteBackend) Dialect() Dialect { return SQLite }

func (b *SQLiteBackend) Namespace() string { return "" }

func (b *SQLiteBackend) conn(ctx context.Context) sqlQuerier {
	if tx, ok := ctx.Value(sqliteTxKey{}).(*sql.Tx); ok {
		return tx
	}
	return b.db
}

func (b *SQLiteBackend) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := b.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, fmt.Errorf("execute: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("rows affected: %w", err)
	}
	out := Result{RowsAffected: affected}
	if isInsert(query) && affected > 0 {
		if out.InsertedID, err = res.LastInsertId(); err != nil {
			return Result{}, fmt.Errorf("last insert id: %w", err)
		}
	}
	return out, nil
}

func (b *SQLiteBackend) FetchOne(ctx context.Context, query string, args ...any) Row {
	return sqlRow{row: b.conn(ctx).QueryRowContext(ctx, query, args...)}
}

func (b *SQLiteBackend) FetchAll(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := b.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return sqlRows{Rows: rows}, nil
}

func (b *SQLiteBackend) ExecDDL(ctx context.Context, ddl string) error {
	if _, err := b.conn(ctx).ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("exec ddl: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := ctx.Value(sqliteTxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, sqliteTxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Migrate(ctx context.Context, fsys fs.FS) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(string(SQLite)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, b.db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Close() {
	if err := b.db.Close(); err != nil {
		zap.L().Error("failed to close sqlite", zap.Error(err))
	}
}

type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRows
	}
	return err
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}
