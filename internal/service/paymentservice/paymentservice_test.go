package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 123, time.UTC)

func NewMock(t *testing.T, opts Options) (*Service, *MockSettingRepo, *MockRequestRepo) {
	ctrl := gomock.NewController(t)
	txManager := storage.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn storage.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	settings := NewMockSettingRepo(ctrl)
	requests := NewMockRequestRepo(ctrl)

	service := New(txManager, settings, requests, opts)
	service.now = func() time.Time { return fixedNow }
	return service, settings, requests
}

func strPtr(s string) *string { return &s }

func TestService_ActiveSettings(t *testing.T) {
	service, settings, _ := NewMock(t, Options{UploadsBaseURL: "https://cdn.example.com/uploads/"})
	settings.EXPECT().ListActive(gomock.Any()).Return([]domain.PaymentSetting{
		{ID: 1, PaymentMethod: "bitcoin", Address: "bc1q", QRCodePath: strPtr("uploads/qr-bitcoin.png"), IsActive: true},
		{ID: 2, PaymentMethod: "usdt_trc20", Address: "TQ5n", IsActive: true},
	}, nil)

	views, err := service.ActiveSettings(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "https://cdn.example.com/uploads/qr-bitcoin.png", views[0].QRCodeURL)
	assert.Empty(t, views[1].QRCodeURL)
}

func TestService_UpdateSetting(t *testing.T) {
	ctx := context.Background()

	t.Run("Updated", func(t *testing.T) {
		service, settings, _ := NewMock(t, Options{})
		settings.EXPECT().Update(ctx, "bitcoin", "bc1q", true, fixedNow.Truncate(time.Second)).Return(true, nil)

		assert.NoError(t, service.UpdateSetting(ctx, "bitcoin", " bc1q ", true))
	})

	t.Run("Unknown method", func(t *testing.T) {
		service, settings, _ := NewMock(t, Options{})
		settings.EXPECT().Update(ctx, "paypal", "x", false, gomock.Any()).Return(false, nil)

		assert.ErrorIs(t, service.UpdateSetting(ctx, "paypal", "x", false), domain.ErrNotFound)
	})
}

func TestService_SetQRCode(t *testing.T) {
	tests := []struct {
		name             string
		ref              string
		prepareMock      func(settings *MockSettingRepo)
		expectedPrevious string
		expectedErr      error
	}{
		{
			name: "Replaces previous image",
			ref:  "qr-bitcoin-2.png",
			prepareMock: func(settings *MockSettingRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(&domain.PaymentSetting{PaymentMethod: "bitcoin", QRCodePath: strPtr("qr-bitcoin-1.png")}, nil)
				settings.EXPECT().SetQRCode(gomock.Any(), "bitcoin", strPtr("qr-bitcoin-2.png"), gomock.Any()).Return(true, nil)
			},
			expectedPrevious: "qr-bitcoin-1.png",
		},
		{
			name: "First image",
			ref:  "qr-bitcoin-1.png",
			prepareMock: func(settings *MockSettingRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(&domain.PaymentSetting{PaymentMethod: "bitcoin"}, nil)
				settings.EXPECT().SetQRCode(gomock.Any(), "bitcoin", gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "Unknown method",
			ref:  "qr.png",
			prepareMock: func(settings *MockSettingRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(nil, nil)
			},
			expectedErr: ErrSettingNotFound,
		},
		{
			name:        "Empty reference",
			ref:         " ",
			prepareMock: func(settings *MockSettingRepo) {},
			expectedErr: ErrEmptyQRCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, settings, _ := NewMock(t, Options{})
			tt.prepareMock(settings)

			previous, err := service.SetQRCode(context.Background(), "bitcoin", tt.ref)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrevious, previous)
		})
	}
}

func TestService_CreateRequest(t *testing.T) {
	amount := decimal.NewFromInt(200)
	hash := strPtr("0xabc")

	tests := []struct {
		name        string
		amount      decimal.Decimal
		prepareMock func(settings *MockSettingRepo, requests *MockRequestRepo)
		expectedErr error
	}{
		{
			name:   "Pending request created",
			amount: amount,
			prepareMock: func(settings *MockSettingRepo, requests *MockRequestRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(&domain.PaymentSetting{PaymentMethod: "bitcoin", IsActive: true}, nil)
				requests.EXPECT().Create(gomock.Any(), &domain.PaymentRequest{
					UserID:          4,
					PaymentMethod:   "bitcoin",
					Amount:          amount,
					Status:          domain.PaymentPending,
					TransactionHash: hash,
					CreatedAt:       fixedNow.Truncate(time.Second),
				}).DoAndReturn(func(_ context.Context, pr *domain.PaymentRequest) (*domain.PaymentRequest, error) {
					pr.ID = 11
					return pr, nil
				})
			},
		},
		{
			name:        "Zero amount",
			amount:      decimal.Zero,
			prepareMock: func(settings *MockSettingRepo, requests *MockRequestRepo) {},
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "Fractions of a cent",
			amount:      decimal.RequireFromString("25.005"),
			prepareMock: func(settings *MockSettingRepo, requests *MockRequestRepo) {},
			expectedErr: ErrInvalidAmount,
		},
		{
			name:   "Inactive method",
			amount: amount,
			prepareMock: func(settings *MockSettingRepo, requests *MockRequestRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(&domain.PaymentSetting{PaymentMethod: "bitcoin"}, nil)
			},
			expectedErr: ErrMethodUnavailable,
		},
		{
			name:   "Unknown method",
			amount: amount,
			prepareMock: func(settings *MockSettingRepo, requests *MockRequestRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(nil, nil)
			},
			expectedErr: ErrMethodUnavailable,
		},
		{
			name:   "Database error",
			amount: amount,
			prepareMock: func(settings *MockSettingRepo, requests *MockRequestRepo) {
				settings.EXPECT().Find(gomock.Any(), "bitcoin").Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, settings, requests := NewMock(t, Options{})
			tt.prepareMock(settings, requests)

			req, err := service.CreateRequest(context.Background(), 4, "bitcoin", tt.amount, hash, nil)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), req.ID)
			assert.Equal(t, domain.PaymentPending, req.Status)
		})
	}
}

func TestService_PaymentLink(t *testing.T) {
	tests := []struct {
		name        string
		link        string
		amount      decimal.Decimal
		expected    string
		expectedErr error
	}{
		{
			name:     "Amount in cents",
			link:     "https://buy.stripe.com/test_123",
			amount:   decimal.RequireFromString("25.5"),
			expected: "https://buy.stripe.com/test_123?client_reference_id=7&prefilled_amount=2550",
		},
		{
			name:     "Rounded to the cent",
			link:     "https://buy.stripe.com/test_123",
			amount:   decimal.RequireFromString("10.005"),
			expected: "https://buy.stripe.com/test_123?client_reference_id=7&prefilled_amount=1001",
		},
		{
			name:        "Below minimum",
			link:        "https://buy.stripe.com/test_123",
			amount:      decimal.RequireFromString("9.99"),
			expectedErr: ErrBelowLinkMinimum,
		},
		{
			name:        "Link not configured",
			amount:      decimal.NewFromInt(50),
			expectedErr: ErrLinkNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := NewMock(t, Options{PaymentLink: tt.link})

			link, err := service.PaymentLink(7, tt.amount)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, link)
		})
	}
}

func TestService_ListRequests(t *testing.T) {
	service, _, requests := NewMock(t, Options{})
	requests.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database error"))

	_, err := service.ListRequests(context.Background())
	assert.Error(t, err)
}
