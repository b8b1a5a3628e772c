package socialrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("ON CONFLICT (platform) DO UPDATE SET url = excluded.url, is_active = excluded.is_active, updated_at = excluded.updated_at RETURNING id")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Link saved",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("telegram", "https://t.me/invest", true, at, at).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("telegram", "https://t.me/invest", true, at, at).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Upsert(context.Background(), "telegram", "https://t.me/invest", true, at)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(backend.Close)
	require.NoError(t, schema.Bootstrap(ctx, backend, migrations.Migrations))
	repo := New(backend)
	at := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.Upsert(ctx, "telegram", "https://t.me/invest", true, at))
	require.NoError(t, repo.Upsert(ctx, "youtube", "https://youtube.com/@invest", true, at))

	links, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, links, 5)

	byPlatform := make(map[string]string)
	for _, l := range links {
		if l.IsActive {
			byPlatform[l.Platform] = l.URL
		}
	}
	assert.Equal(t, map[string]string{
		"telegram": "https://t.me/invest",
		"youtube":  "https://youtube.com/@invest",
	}, byPlatform)
}
