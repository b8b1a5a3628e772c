package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Pool is the part of *pgxpool.Pool the backend uses; pgxmock pools satisfy it too.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgTxKey struct{}

type PostgresBackend struct {
	pool      Pool
	namespace string
}

func NewPostgres(pool Pool, namespace string) *PostgresBackend {
	return &PostgresBackend{
		pool:      pool,
		namespace: namespace,
	}
}

func OpenPostgres(ctx context.Context, url, namespace string) (*PostgresBackend, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if namespace != "" {
		cfg.ConnConfig.RuntimeParams["search_path"] = pgx.Identifier{namespace}.Sanitize() + ",public"
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	zap.L().Info("using postgres backend", zap.String("schema", namespace))
	return NewPostgres(pool, namespace), nil
}

func (b *PostgresBackend) Dialect() Dialect { return Postgres }

func (b *PostgresBackend) Namespace() string { return b.namespace }

func (b *PostgresBackend) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(pgTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return b.pool
}

func (b *PostgresBackend) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	q := Rebind(query)
	if !isInsert(q) {
		tag, err := b.conn(ctx).Exec(ctx, q, args...)
		if err != nil {
			return Result{}, fmt.Errorf("execute: %w", err)
		}
		return Result{RowsAffected: tag.RowsAffected()}, nil
	}

	rows, err := b.conn(ctx).Query(ctx, withReturningID(q), args...)
	if err != nil {
		return Result{}, fmt.Errorf("execute insert: %w", err)
	}
	defer rows.Close()

	var res Result
	for rows.Next() {
		if res.RowsAffected == 0 {
			values, err := rows.Values()
			if err != nil {
				return Result{}, fmt.Errorf("read inserted id: %w", err)
			}
			if len(values) > 0 {
				res.InsertedID = toInt64(values[0])
			}
		}
		res.RowsAffected++
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("execute insert: %w", err)
	}
	return res, nil
}

func (b *PostgresBackend) FetchOne(ctx context.Context, query string, args ...any) Row {
	return pgRow{row: b.conn(ctx).QueryRow(ctx, Rebind(query), args...)}
}

func (b *PostgresBackend) FetchAll(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := b.conn(ctx).Query(ctx, Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows, nil
}

// ExecDDL sends the statements without arguments, so several may be separated by semicolons.
func (b *PostgresBackend) ExecDDL(ctx context.Context, ddl string) error {
	if _, err := b.conn(ctx).Exec(ctx, ddl); err != nil {
		return fmt.Errorf("exec ddl: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := ctx.Value(pgTxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, pgTxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Migrate(ctx context.Context, fsys fs.FS) error {
	pool, ok := b.pool.(*pgxpool.Pool)
	if !ok {
		return errors.New("migrations require a pgxpool.Pool")
	}
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Close() {
	b.pool.Close()
}

type pgRow struct {
	row pgx.Row
}

func (r pgRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}
	return err
}

func toInt64(v any) int64 {
	switch id := v.(type) {
	case int64:
		return id
	case int32:
		return int64(id)
	case int:
		return int64(id)
	case int16:
		return int64(id)
	default:
		return 0
	}
}
