package productservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

//go:generate mockgen -source=productservice.go -destination=mock_productservice.go -package=productservice

type Repo interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (bool, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

var (
	ErrProductNotFound = fmt.Errorf("%w: product not found", domain.ErrNotFound)
	ErrInvalidProduct  = fmt.Errorf("%w: invalid product", domain.ErrValidation)
)

type Service struct {
	txManager storage.TXManager
	repo      Repo
}

func New(txManager storage.TXManager, repo Repo) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
	}
}

func validate(p *domain.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case !p.MinInvestment.IsPositive():
		return fmt.Errorf("%w: min_investment must be greater than zero", ErrInvalidProduct)
	case !p.ExpectedReturn.IsPositive():
		return fmt.Errorf("%w: expected_return must be greater than zero", ErrInvalidProduct)
	case p.DurationMonths <= 0:
		return fmt.Errorf("%w: duration_months must be greater than zero", ErrInvalidProduct)
	case !p.RiskLevel.Valid():
		return fmt.Errorf("%w: unknown risk level %q", ErrInvalidProduct, p.RiskLevel)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, p.Category)
	}
	return nil
}

// ListActive returns the catalog shown to investors, best expected return first.
func (s *Service) ListActive(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	zap.L().Info("product created", zap.Int64("product_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, p *domain.Product) error {
	if err := validate(p); err != nil {
		return err
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		zap.L().Error("can't update product", zap.Int64("product_id", p.ID), zap.Error(err))
		return err
	}
	if !updated {
		return ErrProductNotFound
	}
	return nil
}

// Deactivate hides the product from the catalog. Existing investments keep referencing it.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	deactivated, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		zap.L().Error("can't deactivate product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}
	if !deactivated {
		return ErrProductNotFound
	}
	return nil
}

// SeedDefaults fills an empty catalog with the starter products. A catalog that already has
// products is left alone.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	seeded := 0
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, p := range DefaultCatalog() {
			if _, err := s.repo.Create(ctx, &p); err != nil {
				return err
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't seed catalog", zap.Error(err))
		return 0, err
	}
	if seeded > 0 {
		zap.L().Info("default catalog seeded", zap.Int("products", seeded))
	}
	return seeded, nil
}

func DefaultCatalog() []domain.Product {
	product := func(name, description string, minimum int64, ret string, months int, risk domain.RiskLevel, category domain.Category) domain.Product {
		return domain.Product{
			Name:           name,
			Description:    description,
			MinInvestment:  decimal.NewFromInt(minimum),
			ExpectedReturn: decimal.RequireFromString(ret),
			DurationMonths: months,
			RiskLevel:      risk,
			Category:       category,
			IsActive:       true,
		}
	}
	return []domain.Product{
		product("Government bonds", "Reliable government bonds with a fixed income", 1000, "8.5", 12, domain.RiskLow, domain.CategoryBonds),
		product("Technology stocks", "A basket of leading technology companies", 5000, "15", 24, domain.RiskMedium, domain.CategoryStocks),
		product("Commercial real estate", "Income from commercial property", 50000, "12", 36, domain.RiskMedium, domain.CategoryRealEstate),
		product("IT startups", "Venture investments in promising startups", 10000, "25", 48, domain.RiskHigh, domain.CategoryVenture),
		product("Deposit certificate", "Bank deposit with a guaranteed income", 500, "6", 6, domain.RiskMinimal, domain.CategoryDeposits),
		product("Gold and precious metals", "Physical gold and precious metals", 2000, "10", 12, domain.RiskLow, domain.CategoryCommodities),
	}
}
