package settingrepo

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

const settingColumns = "id, payment_method, address, qr_code_path, is_active, updated_at"

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func scanSetting(row storage.Row) (*domain.PaymentSetting, error) {
	var s domain.PaymentSetting
	if err := row.Scan(&s.ID, &s.PaymentMethod, &s.Address, &s.QRCodePath, &s.IsActive, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.PaymentSetting, error) {
	rows, err := r.db.FetchAll(ctx, query)
	if err != nil {
		zap.L().Error("can't get payment settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.PaymentSetting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			zap.L().Error("can't scan payment setting", zap.Error(err))
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment settings", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.PaymentSetting, error) {
	return r.list(ctx, "SELECT "+settingColumns+" FROM payment_settings WHERE is_active = TRUE ORDER BY id")
}

func (r *Repository) List(ctx context.Context) ([]domain.PaymentSetting, error) {
	return r.list(ctx, "SELECT "+settingColumns+" FROM payment_settings ORDER BY id")
}

func (r *Repository) Find(ctx context.Context, method string) (*domain.PaymentSetting, error) {
	s, err := scanSetting(r.db.FetchOne(ctx, "SELECT "+settingColumns+" FROM payment_settings WHERE payment_method = ?", method))
	if errors.Is(err, storage.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment setting", zap.String("method", method), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) Update(ctx context.Context, method, address string, active bool, at time.Time) (bool, error) {
	query := "UPDATE payment_settings SET address = ?, is_active = ?, updated_at = ? WHERE payment_method = ?"
	res, err := r.db.Execute(ctx, query, address, active, at, method)
	if err != nil {
		zap.L().Error("can't update payment setting", zap.String("method", method), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) SetQRCode(ctx context.Context, method string, path *string, at time.Time) (bool, error) {
	query := "UPDATE payment_settings SET qr_code_path = ?, updated_at = ? WHERE payment_method = ?"
	res, err := r.db.Execute(ctx, query, path, at, method)
	if err != nil {
		zap.L().Error("can't set qr code", zap.String("method", method), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}
