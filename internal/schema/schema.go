// Package schema brings a backend to the table layout the service expects.
package schema

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/storage"
)

const legacyShapeQuery = `
	SELECT
		EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = 'users'),
		EXISTS (SELECT 1 FROM information_schema.columns WHERE table_schema = ? AND table_name = 'users' AND column_name = 'full_name'),
		EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = 'products')
`

// Bootstrap creates the namespace, repairs a legacy layout, creates missing tables and indexes
// and applies versioned seed migrations. Every step is safe to repeat.
func Bootstrap(ctx context.Context, backend storage.Backend, seeds fs.FS) error {
	if backend.Dialect() == storage.Postgres {
		if err := EnsureNamespace(ctx, backend); err != nil {
			return err
		}
		if _, err := Repair(ctx, backend); err != nil {
			return err
		}
	}

	if err := backend.ExecDDL(ctx, DDL(backend.Dialect())); err != nil {
		zap.L().Error("failed to create tables", zap.Error(err))
		return fmt.Errorf("create tables: %w", err)
	}

	if err := backend.Migrate(ctx, seeds); err != nil {
		zap.L().Error("failed to apply seed migrations", zap.Error(err))
		return err
	}

	zap.L().Info("schema is ready", zap.String("dialect", string(backend.Dialect())))
	return nil
}

func DDL(dialect storage.Dialect) string {
	if dialect == storage.Postgres {
		return postgresDDL
	}
	return sqliteDDL
}

func EnsureNamespace(ctx context.Context, db storage.Adapter) error {
	ns := db.Namespace()
	if ns == "" {
		return nil
	}
	if err := db.ExecDDL(ctx, "CREATE SCHEMA IF NOT EXISTS "+pgx.Identifier{ns}.Sanitize()); err != nil {
		zap.L().Error("failed to create schema", zap.String("schema", ns), zap.Error(err))
		return fmt.Errorf("create schema %s: %w", ns, err)
	}
	return nil
}

// Repair drops every known table of the namespace when it still holds the layout of an older
// release: a users table without full_name, or a table named products. Other namespaces are never
// touched. It reports whether tables were dropped.
func Repair(ctx context.Context, db storage.Adapter) (bool, error) {
	ns := db.Namespace()
	if db.Dialect() != storage.Postgres || ns == "" {
		return false, nil
	}

	var hasUsers, hasFullName, hasProducts bool
	err := db.FetchOne(ctx, legacyShapeQuery, ns, ns, ns).Scan(&hasUsers, &hasFullName, &hasProducts)
	if err != nil {
		zap.L().Error("failed to inspect schema", zap.String("schema", ns), zap.Error(err))
		return false, fmt.Errorf("inspect schema %s: %w", ns, err)
	}

	if !(hasUsers && !hasFullName) && !hasProducts {
		return false, nil
	}

	zap.L().Warn("legacy table layout detected, recreating tables",
		zap.String("schema", ns),
		zap.Bool("users_without_full_name", hasUsers && !hasFullName),
		zap.Bool("products_table", hasProducts),
	)
	if err := db.ExecDDL(ctx, dropStatements(ns)); err != nil {
		zap.L().Error("failed to drop legacy tables", zap.String("schema", ns), zap.Error(err))
		return false, fmt.Errorf("drop legacy tables in %s: %w", ns, err)
	}
	return true, nil
}

func dropStatements(ns string) string {
	var b strings.Builder
	for _, table := range knownTables {
		b.WriteString("DROP TABLE IF EXISTS ")
		b.WriteString(pgx.Identifier{ns, table}.Sanitize())
		b.WriteString(" CASCADE;\n")
	}
	return b.String()
}
