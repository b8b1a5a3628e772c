package userservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, fullName string, phone *string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, id int64, role domain.Role) (bool, error)
	SetRoleByEmail(ctx context.Context, email string, role domain.Role) (bool, error)
	Role(ctx context.Context, id int64) (domain.Role, error)
	Count(ctx context.Context) (int, error)
}

type InvestmentRepo interface {
	PortfolioStats(ctx context.Context, userID int64) (domain.PortfolioStats, error)
	Totals(ctx context.Context) (domain.PlatformStats, error)
}

type ProductRepo interface {
	Count(ctx context.Context) (int, error)
}

var (
	ErrUserNotFound = fmt.Errorf("%w: user not found", domain.ErrNotFound)
	ErrInvalidRole  = fmt.Errorf("%w: role must be user or admin", domain.ErrValidation)
)

type Service struct {
	users       UserRepo
	investments InvestmentRepo
	products    ProductRepo
}

func New(users UserRepo, investments InvestmentRepo, products ProductRepo) *Service {
	return &Service{
		users:       users,
		investments: investments,
		products:    products,
	}
}

// Profile returns the user with portfolio stats computed from the active investments at call time.
func (s *Service) Profile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := s.investments.PortfolioStats(ctx, userID)
	if err != nil {
		zap.L().Error("can't get portfolio stats", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &domain.Profile{User: *user, Stats: stats}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, fullName string, phone *string) (*domain.User, error) {
	updated, err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(fullName), phone)
	if err != nil {
		zap.L().Error("can't update profile", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if !updated {
		return nil, ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) ChangeRole(ctx context.Context, userID int64, role domain.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	changed, err := s.users.SetRole(ctx, userID, role)
	if err != nil {
		zap.L().Error("can't change role", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	if !changed {
		return ErrUserNotFound
	}
	zap.L().Info("user role changed", zap.Int64("user_id", userID), zap.String("role", string(role)))
	return nil
}

func (s *Service) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	stats, err := s.investments.Totals(ctx)
	if err != nil {
		zap.L().Error("can't get investment totals", zap.Error(err))
		return domain.PlatformStats{}, err
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return domain.PlatformStats{}, err
	}
	if stats.TotalProducts, err = s.products.Count(ctx); err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return domain.PlatformStats{}, err
	}
	return stats, nil
}

// PromoteAdmin grants the admin role to an existing account. It reports false when no account
// uses the email yet.
func (s *Service) PromoteAdmin(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	promoted, err := s.users.SetRoleByEmail(ctx, email, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("can't promote admin", zap.String("email", email), zap.Error(err))
		return false, err
	}
	return promoted, nil
}

func (s *Service) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	role, err := s.users.Role(ctx, userID)
	if err != nil {
		zap.L().Error("can't get role", zap.Int64("user_id", userID), zap.Error(err))
		return false, err
	}
	return role == domain.RoleAdmin, nil
}
