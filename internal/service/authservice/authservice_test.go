package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, 2*time.Hour)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	phone := "+380501234567"

	tests := []struct {
		name          string
		email         string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Successful registration",
			email: "  Investor@Example.com ",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "investor@example.com",
				PasswordHash: "hashedpassword",
				FullName:     "Ivan Petrenko",
				Phone:        &phone,
				Balance:      decimal.Zero,
				Role:         domain.RoleUser,
			},
		},
		{
			name:  "User already exists",
			email: "investor@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(&domain.User{Email: "investor@example.com"}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name:  "Error finding user",
			email: "investor@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:  "Error hashing password",
			email: "investor@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:  "Error creating user",
			email: "investor@example.com",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, "testpassword", " Ivan Petrenko", &phone)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestRegister_DuplicateIsValidationError(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)
	userRepo.EXPECT().FindByEmail(gomock.Any(), "a@b.c").Return(&domain.User{ID: 3}, nil)

	_, err := service.Register(context.Background(), "a@b.c", "secret1", "A", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	stored := &domain.User{
		ID:           1,
		Email:        "investor@example.com",
		PasswordHash: "hashedpassword",
	}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "Invalid credentials - user not found",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Database error",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "investor@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "Investor@example.com", tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Successful token generation",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), gomock.Any()).DoAndReturn(func(_ int64, exp time.Time) (string, error) {
					assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, time.Minute)
					return "generated-token", nil
				})
			},
			expectedToken: "generated-token",
		},
		{
			name:   "Error generating token",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
