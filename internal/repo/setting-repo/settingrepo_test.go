package settingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/goinvest/internal/schema"
	"github.com/GlebRadaev/goinvest/internal/storage"
	"github.com/GlebRadaev/goinvest/migrations"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(storage.NewPostgres(mockDB, "")), mockDB
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	qr := "btc.png"

	tests := []struct {
		name      string
		method    string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:   "Known method",
			method: "bitcoin",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_settings WHERE payment_method = $1")).
					WithArgs("bitcoin").
					WillReturnRows(pgxmock.NewRows([]string{"id", "payment_method", "address", "qr_code_path", "is_active", "updated_at"}).
						AddRow(int64(1), "bitcoin", "bc1q", &qr, true, updatedAt))
			},
			found: true,
		},
		{
			name:   "Unknown method",
			method: "paypal",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_settings WHERE payment_method = $1")).
					WithArgs("paypal").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			method: "bitcoin",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_settings WHERE payment_method = $1")).
					WithArgs("bitcoin").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			setting, err := repo.Find(context.Background(), tt.method)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.found, setting != nil)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payment_settings SET address = $1, is_active = $2, updated_at = $3 WHERE payment_method = $4")).
		WithArgs("TXyz", false, at, "usdt_trc20").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.Update(context.Background(), "usdt_trc20", "TXyz", false, at)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(backend.Close)
	require.NoError(t, schema.Bootstrap(ctx, backend, migrations.Migrations))
	repo := New(backend)
	at := time.Now().UTC().Truncate(time.Second)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	updated, err := repo.Update(ctx, "stripe", "", false, at)
	require.NoError(t, err)
	assert.True(t, updated)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3)
	for _, s := range active {
		assert.NotEqual(t, "stripe", s.PaymentMethod)
	}

	qr := "qr/btc.png"
	updated, err = repo.SetQRCode(ctx, "bitcoin", &qr, at)
	require.NoError(t, err)
	assert.True(t, updated)

	setting, err := repo.Find(ctx, "bitcoin")
	require.NoError(t, err)
	require.NotNil(t, setting.QRCodePath)
	assert.Equal(t, qr, *setting.QRCodePath)

	updated, err = repo.SetQRCode(ctx, "paypal", &qr, at)
	require.NoError(t, err)
	assert.False(t, updated)
}
