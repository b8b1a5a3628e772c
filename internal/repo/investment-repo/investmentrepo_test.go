package investmentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/goinvest/internal/domain"
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

func newSQLite(t *testing.T) storage.Backend {
	t.Helper()
	ctx := context.Background()
	backend, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(backend.Close)
	require.NoError(t, schema.Bootstrap(ctx, backend, migrations.Migrations))

	_, err = backend.Execute(ctx, "INSERT INTO users (email, password, full_name) VALUES (?, ?, ?)", "a@example.com", "h", "Anna")
	require.NoError(t, err)
	_, err = backend.Execute(ctx, `INSERT INTO investment_products (name, min_investment, expected_return, duration_months, risk_level, category)
		VALUES (?, ?, ?, ?, ?, ?)`, "Bonds", "500", "8.5", 12, "low", "bonds")
	require.NoError(t, err)
	return backend
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("500")
	inv := &domain.Investment{
		UserID:       1,
		ProductID:    2,
		Amount:       amount,
		StartDate:    start,
		EndDate:      start.AddDate(0, 12, 0),
		Status:       domain.InvestmentActive,
		CurrentValue: amount,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create investment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id")).
					WithArgs(int64(1), int64(2), amount, start, start.AddDate(0, 12, 0), domain.InvestmentActive, amount).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(77)))
			},
		},
		{
			name: "Foreign key violation",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_investments")).
					WithArgs(int64(1), int64(2), amount, start, start.AddDate(0, 12, 0), domain.InvestmentActive, amount).
					WillReturnError(errors.New("violates foreign key constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), inv)
			if tt.expectErr {
				assert.ErrorContains(t, err, "foreign key")
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(77), result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		affected  int64
		completed bool
	}{
		{name: "Active investment completes", affected: 1, completed: true},
		{name: "Already settled investment", affected: 0, completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE user_investments SET status = 'completed' WHERE id = $1 AND status = 'active'")).
				WithArgs(int64(5)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			completed, err := repo.Complete(context.Background(), 5)
			assert.NoError(t, err)
			assert.Equal(t, tt.completed, completed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_PortfolioStats(t *testing.T) {
	repo, mock := NewMock(t)
	invested := decimal.RequireFromString("1500")
	current := decimal.RequireFromString("1620")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND status = 'active'")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count", "invested", "current"}).AddRow(2, invested, current))

	stats, err := repo.PortfolioStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalInvestments)
	assert.True(t, stats.Profit.Equal(decimal.RequireFromString("120")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	backend := newSQLite(t)
	repo := New(backend)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	matured := &domain.Investment{
		UserID: 1, ProductID: 1,
		Amount:       decimal.RequireFromString("500"),
		StartDate:    now.AddDate(0, -12, 0),
		EndDate:      now.Add(-time.Hour),
		Status:       domain.InvestmentActive,
		CurrentValue: decimal.RequireFromString("500"),
	}
	running := &domain.Investment{
		UserID: 1, ProductID: 1,
		Amount:       decimal.RequireFromString("700"),
		StartDate:    now,
		EndDate:      now.AddDate(0, 12, 0),
		Status:       domain.InvestmentActive,
		CurrentValue: decimal.RequireFromString("700"),
	}
	_, err := repo.Create(ctx, matured)
	require.NoError(t, err)
	_, err = repo.Create(ctx, running)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matured.ID)
	assert.Equal(t, int64(2), running.ID)

	due, err := repo.FindMatured(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, matured.ID, due[0].ID)
	assert.True(t, due[0].EndDate.Equal(matured.EndDate))

	details, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, running.ID, details[0].ID)
	assert.Equal(t, "Bonds", details[0].ProductName)
	assert.Equal(t, domain.RiskLow, details[0].RiskLevel)

	stats, err := repo.PortfolioStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalInvestments)
	assert.True(t, stats.TotalInvested.Equal(decimal.RequireFromString("1200")))
	assert.True(t, stats.Profit.IsZero())

	completed, err := repo.Complete(ctx, matured.ID)
	require.NoError(t, err)
	assert.True(t, completed)
	completed, err = repo.Complete(ctx, matured.ID)
	require.NoError(t, err)
	assert.False(t, completed)

	due, err = repo.FindMatured(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.TotalInvestments)
	assert.Equal(t, 1, totals.ActiveInvestments)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a@example.com", all[0].UserEmail)
	assert.Equal(t, "Anna", all[0].UserName)
}
