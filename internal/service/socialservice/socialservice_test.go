package socialservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	txManager := storage.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn storage.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	repo := NewMockRepo(ctrl)
	return New(txManager, repo), repo
}

func TestService_Public(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().List(gomock.Any()).Return([]domain.SocialLink{
		{Platform: "facebook", URL: "", IsActive: true},
		{Platform: "instagram", URL: "https://instagram.com/invest", IsActive: false},
		{Platform: "telegram", URL: "https://t.me/invest", IsActive: true},
	}, nil)

	links, err := service.Public(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"telegram": "https://t.me/invest"}, links)
}

func TestService_Update(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		links       map[string]domain.SocialLink
		prepareMock func(repo *MockRepo)
		expectErr   bool
	}{
		{
			name: "Links saved in platform order",
			links: map[string]domain.SocialLink{
				"twitter":  {URL: " https://x.com/invest ", IsActive: true},
				"facebook": {URL: "", IsActive: false},
			},
			prepareMock: func(repo *MockRepo) {
				gomock.InOrder(
					repo.EXPECT().Upsert(gomock.Any(), "facebook", "", false, at).Return(nil),
					repo.EXPECT().Upsert(gomock.Any(), "twitter", "https://x.com/invest", true, at).Return(nil),
				)
			},
		},
		{
			name:        "Empty platform",
			links:       map[string]domain.SocialLink{"": {URL: "x"}},
			prepareMock: func(repo *MockRepo) {},
			expectErr:   true,
		},
		{
			name:  "Database error",
			links: map[string]domain.SocialLink{"telegram": {URL: "https://t.me/invest", IsActive: true}},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Upsert(gomock.Any(), "telegram", "https://t.me/invest", true, at).Return(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			service.now = func() time.Time { return at }
			tt.prepareMock(repo)

			err := service.Update(context.Background(), tt.links)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
