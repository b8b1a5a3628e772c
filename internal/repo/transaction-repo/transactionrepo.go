package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := "INSERT INTO transactions (user_id, type, amount, description, created_at) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.Execute(ctx, query, tx.UserID, tx.Type, tx.Amount, tx.Description, tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Int64("user_id", tx.UserID), zap.String("type", string(tx.Type)), zap.Error(err))
		return nil, err
	}
	tx.ID = res.InsertedID
	return tx, nil
}

// ListByUser returns the user's history, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, type, amount, description, created_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.FetchAll(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Description, &tx.CreatedAt); err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
