package paymentrepo

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

const requestColumns = "pr.id, pr.user_id, pr.payment_method, pr.amount, pr.status, pr.transaction_hash, pr.screenshot_path, " +
	"pr.created_at, pr.processed_at, pr.processed_by, pr.notes"

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRequest(row storage.Row, extra ...any) (*domain.PaymentRequest, error) {
	var pr domain.PaymentRequest
	dest := []any{&pr.ID, &pr.UserID, &pr.PaymentMethod, &pr.Amount, &pr.Status, &pr.TransactionHash, &pr.ScreenshotPath,
		&pr.CreatedAt, &pr.ProcessedAt, &pr.ProcessedBy, &pr.Notes}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *Repository) Create(ctx context.Context, pr *domain.PaymentRequest) (*domain.PaymentRequest, error) {
	query := `INSERT INTO payment_requests (user_id, payment_method, amount, status, transaction_hash, screenshot_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.Execute(ctx, query, pr.UserID, pr.PaymentMethod, pr.Amount, pr.Status, pr.TransactionHash, pr.ScreenshotPath, pr.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment request", zap.Int64("user_id", pr.UserID), zap.Error(err))
		return nil, err
	}
	pr.ID = res.InsertedID
	return pr, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.PaymentRequest, error) {
	pr, err := scanRequest(r.db.FetchOne(ctx, "SELECT "+requestColumns+" FROM payment_requests pr WHERE pr.id = ?", id))
	if errors.Is(err, storage.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment request", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return pr, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentRequest, error) {
	query := "SELECT " + requestColumns + " FROM payment_requests pr WHERE pr.user_id = ? ORDER BY pr.created_at DESC, pr.id DESC"
	rows, err := r.db.FetchAll(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get payment requests", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.PaymentRequest
	for rows.Next() {
		pr, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan payment request", zap.Error(err))
			return nil, err
		}
		out = append(out, *pr)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment requests", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// ListAll is the admin queue: pending requests first, then newest first.
func (r *Repository) ListAll(ctx context.Context) ([]domain.PaymentRequestDetails, error) {
	query := `SELECT ` + requestColumns + `, u.email, u.full_name
		FROM payment_requests pr
		JOIN users u ON u.id = pr.user_id
		ORDER BY CASE WHEN pr.status = 'pending' THEN 0 ELSE 1 END, pr.created_at DESC, pr.id DESC`
	rows, err := r.db.FetchAll(ctx, query)
	if err != nil {
		zap.L().Error("can't get all payment requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.PaymentRequestDetails
	for rows.Next() {
		var d domain.PaymentRequestDetails
		pr, err := scanRequest(rows, &d.UserEmail, &d.UserName)
		if err != nil {
			zap.L().Error("can't scan payment request", zap.Error(err))
			return nil, err
		}
		d.PaymentRequest = *pr
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment requests", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Process moves a pending request to its final status. It reports false when the request was no
// longer pending, so a request can only ever be processed once.
func (r *Repository) Process(ctx context.Context, id int64, status domain.PaymentStatus, adminID int64, notes *string, at time.Time) (bool, error) {
	query := `UPDATE payment_requests
		SET status = ?, processed_at = ?, processed_by = ?, notes = ?
		WHERE id = ? AND status = 'pending'`
	res, err := r.db.Execute(ctx, query, status, at, adminID, notes, id)
	if err != nil {
		zap.L().Error("can't process payment request", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}
