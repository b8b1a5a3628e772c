package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/dto"
	"github.com/GlebRadaev/goinvest/internal/service/authservice"
	"github.com/GlebRadaev/goinvest/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	phone := "+380501234567"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"new@example.com","password":"password123","fullName":"New User","phone":"+380501234567"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "password123", "New User", &phone).Return(&domain.User{
					ID:    1,
					Email: "new@example.com",
				}, nil)
				service.EXPECT().GenerateToken(int64(1)).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "User already exists",
			body: `{"email":"old@example.com","password":"password123","fullName":"Old User"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "old@example.com", "password123", "Old User", nil).Return(nil, authservice.ErrUserExists)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrUserExists.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing full name",
			body:          `{"email":"new@example.com","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Validation failed",
		},
		{
			name: "Error generating token",
			body: `{"email":"new@example.com","password":"password123","fullName":"New User"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "password123", "New User", nil).Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(int64(1)).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.RegisterResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, int64(1), resp.UserID)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"investor@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "investor@example.com", "password123").
					Return(&domain.User{
						ID:       1,
						Email:    "investor@example.com",
						FullName: "Ivan Petrenko",
						Balance:  decimal.NewFromInt(1000),
						Role:     domain.RoleAdmin,
					}, nil)
				service.EXPECT().GenerateToken(int64(1)).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"investor@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "investor@example.com", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Storage failure",
			body: `{"email":"investor@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "investor@example.com", "password123").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Missing password",
			body:          `{"email":"investor@example.com"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.LoginResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, "admin", resp.User.Role)
			assert.True(t, resp.User.Balance.Equal(decimal.NewFromInt(1000)))
		})
	}
}
