package productrepo

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

const productColumns = "id, name, description, min_investment, expected_return, duration_months, risk_level, category, is_active, created_at"

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProduct(row storage.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.MinInvestment, &p.ExpectedReturn, &p.DurationMonths,
		&p.RiskLevel, &p.Category, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.FetchAll(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// ListActive returns the catalog shown to investors, highest expected return first.
func (r *Repository) ListActive(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, "SELECT "+productColumns+" FROM investment_products WHERE is_active = TRUE ORDER BY expected_return DESC, id")
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.FetchOne(ctx, "SELECT "+productColumns+" FROM investment_products WHERE id = ?", id))
	if errors.Is(err, storage.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `INSERT INTO investment_products (name, description, min_investment, expected_return, duration_months, risk_level, category, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.Execute(ctx, query, p.Name, p.Description, p.MinInvestment, p.ExpectedReturn, p.DurationMonths,
		p.RiskLevel, p.Category, p.IsActive)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	p.ID = res.InsertedID
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Product) (bool, error) {
	query := `UPDATE investment_products
		SET name = ?, description = ?, min_investment = ?, expected_return = ?, duration_months = ?, risk_level = ?, category = ?, is_active = ?
		WHERE id = ?`
	res, err := r.db.Execute(ctx, query, p.Name, p.Description, p.MinInvestment, p.ExpectedReturn, p.DurationMonths,
		p.RiskLevel, p.Category, p.IsActive, p.ID)
	if err != nil {
		zap.L().Error("can't update product", zap.Int64("id", p.ID), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

// Deactivate hides the product from the catalog; investments that reference it keep working.
func (r *Repository) Deactivate(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE investment_products SET is_active = FALSE WHERE id = ?", id)
	if err != nil {
		zap.L().Error("can't deactivate product", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.FetchOne(ctx, "SELECT COUNT(*) FROM investment_products").Scan(&n); err != nil {
		zap.L().Error("can't count products", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.db.FetchOne(ctx, "SELECT COUNT(*) FROM investment_products WHERE is_active = TRUE").Scan(&n); err != nil {
		zap.L().Error("can't count active products", zap.Error(err))
		return 0, err
	}
	return n, nil
}
