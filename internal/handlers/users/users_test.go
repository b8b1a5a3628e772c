package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/dto"
	"github.com/GlebRadaev/goinvest/internal/service/ledgerservice"
	"github.com/GlebRadaev/goinvest/internal/service/userservice"
	"github.com/GlebRadaev/goinvest/pkg/auth"
	"github.com/GlebRadaev/goinvest/pkg/utils"
)

func NewMock(t *testing.T) (*UserHandler, *MockUserService, *MockLedger) {
	ctrl := gomock.NewController(t)
	userService := NewMockUserService(ctrl)
	ledger := NewMockLedger(ctrl)
	return New(userService, ledger), userService, ledger
}

type amountEq struct{ want decimal.Decimal }

func (m amountEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m amountEq) String() string { return "equals " + m.want.String() }

func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestProfileHandler(t *testing.T) {
	handler, userService, _ := NewMock(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile with stats",
			prepareMock: func() {
				userService.EXPECT().Profile(gomock.Any(), int64(4)).Return(&domain.Profile{
					User: domain.User{ID: 4, Email: "a@b.c", Balance: decimal.NewFromInt(500), Role: domain.RoleUser, CreatedAt: created},
					Stats: domain.PortfolioStats{
						TotalInvestments: 1,
						TotalInvested:    decimal.NewFromInt(1000),
						CurrentValue:     decimal.NewFromInt(1000),
						Profit:           decimal.Zero,
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				userService.EXPECT().Profile(gomock.Any(), int64(4)).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil), 4)
			w := httptest.NewRecorder()

			handler.Profile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(4), body.User.ID)
				assert.Equal(t, 1, body.Stats.TotalInvestments)
				assert.True(t, body.Stats.TotalInvested.Equal(decimal.NewFromInt(1000)))
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	handler, userService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Updated",
			body: `{"fullName":"New Name"}`,
			prepareMock: func() {
				userService.EXPECT().UpdateProfile(gomock.Any(), int64(4), "New Name", nil).Return(&domain.User{ID: 4}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing full name",
			body:         `{"phone":"+1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPut, "/api/users/profile", bytes.NewBufferString(tt.body)), 4)
			w := httptest.NewRecorder()

			handler.UpdateProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAddBalanceHandler(t *testing.T) {
	handler, _, ledger := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Balance credited",
			body: `{"amount":100}`,
			prepareMock: func() {
				ledger.EXPECT().TopUp(gomock.Any(), int64(4), amountEq{decimal.NewFromInt(100)}, "").Return(decimal.NewFromInt(1100), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":-5}`,
			prepareMock: func() {
				ledger.EXPECT().TopUp(gomock.Any(), int64(4), gomock.Any(), "").Return(decimal.Zero, ledgerservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: ledgerservice.ErrInvalidAmount.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage failure",
			body: `{"amount":100}`,
			prepareMock: func() {
				ledger.EXPECT().TopUp(gomock.Any(), int64(4), gomock.Any(), "").Return(decimal.Zero, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPost, "/api/users/balance/add", bytes.NewBufferString(tt.body)), 4)
			w := httptest.NewRecorder()

			handler.AddBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var body dto.BalanceResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.True(t, body.Balance.Equal(decimal.NewFromInt(1100)))
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, _, ledger := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Withdrawn",
			body: `{"amount":25.5,"method":"usdt_trc20","address":"TQ5n"}`,
			prepareMock: func() {
				ledger.EXPECT().Withdraw(gomock.Any(), int64(4), amountEq{decimal.RequireFromString("25.5")}, "usdt_trc20", "TQ5n").
					Return(decimal.RequireFromString("74.5"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":500,"method":"usdt_trc20","address":"TQ5n"}`,
			prepareMock: func() {
				ledger.EXPECT().Withdraw(gomock.Any(), int64(4), gomock.Any(), "usdt_trc20", "TQ5n").
					Return(decimal.Zero, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing address",
			body:         `{"amount":5,"method":"usdt_trc20"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPost, "/api/users/balance/withdraw", bytes.NewBufferString(tt.body)), 4)
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestTransactionsHandler(t *testing.T) {
	handler, _, ledger := NewMock(t)
	at := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	ledger.EXPECT().Transactions(gomock.Any(), int64(4)).Return([]domain.Transaction{
		{ID: 2, UserID: 4, Type: domain.TransactionInvestment, Amount: decimal.NewFromInt(100), Description: "Investment in Bonds", CreatedAt: at},
		{ID: 1, UserID: 4, Type: domain.TransactionDeposit, Amount: decimal.NewFromInt(200), Description: "Balance top-up", CreatedAt: at},
	}, nil)

	r := withUser(httptest.NewRequest(http.MethodGet, "/api/users/transactions", nil), 4)
	w := httptest.NewRecorder()
	handler.Transactions(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.TransactionDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "investment", body[0].Type)
	assert.Equal(t, "deposit", body[1].Type)
}
