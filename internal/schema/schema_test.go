package schema

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/goinvest/internal/storage"
	"github.com/GlebRadaev/goinvest/migrations"
)

func countRows(t *testing.T, db storage.Adapter, query string) int {
	t.Helper()
	var n int
	require.NoError(t, db.FetchOne(context.Background(), query).Scan(&n))
	return n
}

func TestBootstrap_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, Bootstrap(ctx, backend, migrations.Migrations))
	require.NoError(t, Bootstrap(ctx, backend, migrations.Migrations))

	for _, table := range []string{
		"users", "investment_products", "user_investments", "transactions",
		"payment_requests", "payment_settings", "social_links",
	} {
		n := countRows(t, backend, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = '"+table+"'")
		assert.Equal(t, 1, n, table)
	}
	assert.Equal(t, 5, countRows(t, backend, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_%'"))
	assert.Equal(t, 4, countRows(t, backend, "SELECT COUNT(*) FROM payment_settings"))
	assert.Equal(t, 4, countRows(t, backend, "SELECT COUNT(*) FROM social_links"))
	assert.Equal(t, 4, countRows(t, backend, "SELECT COUNT(*) FROM payment_settings WHERE is_active = TRUE"))
	assert.Equal(t, 0, countRows(t, backend, "SELECT COUNT(*) FROM social_links WHERE is_active = TRUE"))
}

func TestRepair(t *testing.T) {
	inspect := regexp.QuoteMeta("information_schema.tables WHERE table_schema = $1 AND table_name = 'users'")

	tests := []struct {
		name       string
		namespace  string
		mockSetup  func(mock pgxmock.PgxPoolIface)
		expectErr  bool
		expectDrop bool
	}{
		{
			name:      "Current layout is kept",
			namespace: "investment",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(inspect).
					WithArgs("investment", "investment", "investment").
					WillReturnRows(pgxmock.NewRows([]string{"users", "full_name", "products"}).AddRow(true, true, false))
			},
		},
		{
			name:      "Namespace without tables is a no-op",
			namespace: "investment",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(inspect).
					WithArgs("investment", "investment", "investment").
					WillReturnRows(pgxmock.NewRows([]string{"users", "full_name", "products"}).AddRow(false, false, false))
			},
		},
		{
			name:      "Users without full_name are recreated",
			namespace: "investment",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(inspect).
					WithArgs("investment", "investment", "investment").
					WillReturnRows(pgxmock.NewRows([]string{"users", "full_name", "products"}).AddRow(true, false, false))
				mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE IF EXISTS "investment"."withdrawals" CASCADE;`)).
					WillReturnResult(pgxmock.NewResult("DROP", 0))
			},
			expectDrop: true,
		},
		{
			name:      "Legacy products table is recreated",
			namespace: "tenant_b",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(inspect).
					WithArgs("tenant_b", "tenant_b", "tenant_b").
					WillReturnRows(pgxmock.NewRows([]string{"users", "full_name", "products"}).AddRow(true, true, true))
				mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE IF EXISTS "tenant_b"."users" CASCADE;`)).
					WillReturnResult(pgxmock.NewResult("DROP", 0))
			},
			expectDrop: true,
		},
		{
			name:      "Inspection failure is returned",
			namespace: "investment",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(inspect).
					WithArgs("investment", "investment", "investment").
					WillReturnError(errors.New("permission denied"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.mockSetup(mock)

			dropped, err := Repair(context.Background(), storage.NewPostgres(mock, tt.namespace))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectDrop, dropped)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepair_SkipsSQLite(t *testing.T) {
	backend, err := storage.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer backend.Close()

	dropped, err := Repair(context.Background(), backend)
	assert.NoError(t, err)
	assert.False(t, dropped)
}

func TestDropStatements_StayInNamespace(t *testing.T) {
	stmts := dropStatements("investment")

	for _, table := range knownTables {
		assert.Contains(t, stmts, `DROP TABLE IF EXISTS "investment"."`+table+`" CASCADE;`)
	}
	assert.NotContains(t, stmts, "public")
}

func TestEnsureNamespace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE SCHEMA IF NOT EXISTS "investment"`)).
		WillReturnResult(pgxmock.NewResult("CREATE SCHEMA", 0))

	require.NoError(t, EnsureNamespace(context.Background(), storage.NewPostgres(mock, "investment")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDDL(t *testing.T) {
	assert.Contains(t, DDL(storage.Postgres), "BIGSERIAL")
	assert.Contains(t, DDL(storage.SQLite), "AUTOINCREMENT")
	assert.NotContains(t, DDL(storage.SQLite), "NUMERIC")
}
