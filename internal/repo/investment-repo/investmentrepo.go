package investmentrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

const investmentColumns = "ui.id, ui.user_id, ui.product_id, ui.amount, ui.start_date, ui.end_date, ui.status, ui.current_value"

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	query := `INSERT INTO user_investments (user_id, product_id, amount, start_date, end_date, status, current_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.Execute(ctx, query, inv.UserID, inv.ProductID, inv.Amount, inv.StartDate, inv.EndDate, inv.Status, inv.CurrentValue)
	if err != nil {
		zap.L().Error("can't save investment", zap.Int64("user_id", inv.UserID), zap.Error(err))
		return nil, err
	}
	inv.ID = res.InsertedID
	return inv, nil
}

// ListByUser returns the user's investments joined with their products, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.InvestmentDetails, error) {
	query := `SELECT ` + investmentColumns + `, p.name, p.expected_return, p.risk_level, p.category
		FROM user_investments ui
		JOIN investment_products p ON p.id = ui.product_id
		WHERE ui.user_id = ?
		ORDER BY ui.start_date DESC, ui.id DESC`
	rows, err := r.db.FetchAll(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get investments", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.InvestmentDetails
	for rows.Next() {
		var d domain.InvestmentDetails
		err := rows.Scan(&d.ID, &d.UserID, &d.ProductID, &d.Amount, &d.StartDate, &d.EndDate, &d.Status, &d.CurrentValue,
			&d.ProductName, &d.ExpectedReturn, &d.RiskLevel, &d.Category)
		if err != nil {
			zap.L().Error("can't scan investment", zap.Error(err))
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate investments", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// ListAll is the admin view: every investment with its owner and product, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]domain.InvestmentDetails, error) {
	query := `SELECT ` + investmentColumns + `, p.name, p.expected_return, p.risk_level, p.category, u.email, u.full_name
		FROM user_investments ui
		JOIN investment_products p ON p.id = ui.product_id
		JOIN users u ON u.id = ui.user_id
		ORDER BY ui.start_date DESC, ui.id DESC`
	rows, err := r.db.FetchAll(ctx, query)
	if err != nil {
		zap.L().Error("can't get all investments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.InvestmentDetails
	for rows.Next() {
		var d domain.InvestmentDetails
		err := rows.Scan(&d.ID, &d.UserID, &d.ProductID, &d.Amount, &d.StartDate, &d.EndDate, &d.Status, &d.CurrentValue,
			&d.ProductName, &d.ExpectedReturn, &d.RiskLevel, &d.Category, &d.UserEmail, &d.UserName)
		if err != nil {
			zap.L().Error("can't scan investment", zap.Error(err))
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate investments", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// FindMatured returns up to limit active investments whose end date is not after now.
func (r *Repository) FindMatured(ctx context.Context, now time.Time, limit int) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + `
		FROM user_investments ui
		WHERE ui.status = 'active' AND ui.end_date <= ?
		ORDER BY ui.end_date, ui.id
		LIMIT ?`
	rows, err := r.db.FetchAll(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't get matured investments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Investment
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.ProductID, &inv.Amount, &inv.StartDate, &inv.EndDate, &inv.Status, &inv.CurrentValue)
		if err != nil {
			zap.L().Error("can't scan investment", zap.Error(err))
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate matured investments", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Complete moves an active investment to completed. It reports false when the investment was not
// active anymore, which is how a second settlement of the same investment is detected.
func (r *Repository) Complete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE user_investments SET status = 'completed' WHERE id = ? AND status = 'active'", id)
	if err != nil {
		zap.L().Error("can't complete investment", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) PortfolioStats(ctx context.Context, userID int64) (domain.PortfolioStats, error) {
	var stats domain.PortfolioStats
	query := `SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(current_value), 0)
		FROM user_investments
		WHERE user_id = ? AND status = 'active'`
	err := r.db.FetchOne(ctx, query, userID).Scan(&stats.TotalInvestments, &stats.TotalInvested, &stats.CurrentValue)
	if err != nil {
		zap.L().Error("can't get portfolio stats", zap.Int64("user_id", userID), zap.Error(err))
		return domain.PortfolioStats{}, err
	}
	stats.TotalInvested = stats.TotalInvested.Round(domain.MoneyScale)
	stats.CurrentValue = stats.CurrentValue.Round(domain.MoneyScale)
	stats.Profit = stats.CurrentValue.Sub(stats.TotalInvested)
	return stats, nil
}

// Totals fills the investment part of the platform statistics.
func (r *Repository) Totals(ctx context.Context) (domain.PlatformStats, error) {
	var stats domain.PlatformStats
	query := `SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0)
		FROM user_investments`
	err := r.db.FetchOne(ctx, query).Scan(&stats.TotalInvestments, &stats.TotalInvested, &stats.ActiveInvestments)
	if err != nil {
		zap.L().Error("can't get investment totals", zap.Error(err))
		return domain.PlatformStats{}, err
	}
	stats.TotalInvested = stats.TotalInvested.Round(domain.MoneyScale)
	return stats, nil
}
