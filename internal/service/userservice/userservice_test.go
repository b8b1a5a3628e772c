package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
)

type mocks struct {
	users       *MockUserRepo
	investments *MockInvestmentRepo
	products    *MockProductRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:       NewMockUserRepo(ctrl),
		investments: NewMockInvestmentRepo(ctrl),
		products:    NewMockProductRepo(ctrl),
	}
	return New(m.users, m.investments, m.products), m
}

func TestService_Profile(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 5, Email: "a@b.c", Balance: decimal.NewFromInt(1000), Role: domain.RoleUser}
	stats := domain.PortfolioStats{
		TotalInvestments: 2,
		TotalInvested:    decimal.NewFromInt(1500),
		CurrentValue:     decimal.NewFromInt(1600),
		Profit:           decimal.NewFromInt(100),
	}

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expected    *domain.Profile
		expectedErr error
	}{
		{
			name: "Profile with stats",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)
				m.investments.EXPECT().PortfolioStats(ctx, int64(5)).Return(stats, nil)
			},
			expected: &domain.Profile{User: *user, Stats: stats},
		},
		{
			name: "Unknown user",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(ctx, int64(5)).Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "Stats failure",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)
				m.investments.EXPECT().PortfolioStats(ctx, int64(5)).Return(domain.PortfolioStats{}, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			profile, err := service.Profile(ctx, 5)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, profile)
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	phone := "+100"

	t.Run("Updated", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().UpdateProfile(ctx, int64(5), "New Name", &phone).Return(true, nil)
		m.users.EXPECT().FindByID(ctx, int64(5)).Return(&domain.User{ID: 5, FullName: "New Name", Phone: &phone}, nil)

		user, err := service.UpdateProfile(ctx, 5, "  New Name ", &phone)
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.FullName)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().UpdateProfile(ctx, int64(5), "X", nil).Return(false, nil)

		_, err := service.UpdateProfile(ctx, 5, "X", nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		role        domain.Role
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Promoted",
			role: domain.RoleAdmin,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().SetRole(ctx, int64(9), domain.RoleAdmin).Return(true, nil)
			},
		},
		{
			name:        "Unknown role",
			role:        domain.Role("root"),
			prepareMock: func(m *mocks) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "Unknown user",
			role: domain.RoleUser,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().SetRole(ctx, int64(9), domain.RoleUser).Return(false, nil)
			},
			expectedErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.ChangeRole(ctx, 9, tt.role)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_PlatformStats(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	m.investments.EXPECT().Totals(ctx).Return(domain.PlatformStats{
		TotalInvestments:  3,
		TotalInvested:     decimal.NewFromInt(4500),
		ActiveInvestments: 2,
	}, nil)
	m.users.EXPECT().Count(ctx).Return(7, nil)
	m.products.EXPECT().Count(ctx).Return(4, nil)

	stats, err := service.PlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalInvestments)
	assert.True(t, stats.TotalInvested.Equal(decimal.NewFromInt(4500)))
	assert.Equal(t, 2, stats.ActiveInvestments)
	assert.Equal(t, 4, stats.TotalProducts)
}

func TestService_PromoteAdmin(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	m.users.EXPECT().SetRoleByEmail(ctx, "boss@example.com", domain.RoleAdmin).Return(true, nil)

	promoted, err := service.PromoteAdmin(ctx, " Boss@Example.com")
	require.NoError(t, err)
	assert.True(t, promoted)
}

func TestService_IsAdmin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		role     domain.Role
		err      error
		expected bool
	}{
		{name: "Admin", role: domain.RoleAdmin, expected: true},
		{name: "Regular user", role: domain.RoleUser},
		{name: "Missing user", role: ""},
		{name: "Lookup failure", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.users.EXPECT().Role(ctx, int64(2)).Return(tt.role, tt.err)

			isAdmin, err := service.IsAdmin(ctx, 2)
			if tt.err != nil {
				assert.Error(t, err)
			}
			assert.Equal(t, tt.expected, isAdmin)
		})
	}
}
