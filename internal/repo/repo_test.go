package repo

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/goinvest/internal/schema"
	"github.com/GlebRadaev/goinvest/internal/storage"
	"github.com/GlebRadaev/goinvest/migrations"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := New(storage.NewPostgres(mockDB, ""))

	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.ProductRepo)
	assert.NotNil(t, repos.InvestmentRepo)
	assert.NotNil(t, repos.TransactionRepo)
	assert.NotNil(t, repos.PaymentRepo)
	assert.NotNil(t, repos.SettingRepo)
	assert.NotNil(t, repos.SocialRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNew_SQLite(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(backend.Close)
	require.NoError(t, schema.Bootstrap(ctx, backend, migrations.Migrations))

	repos := New(backend)

	count, err := repos.ProductRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	settings, err := repos.SettingRepo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settings)
}
