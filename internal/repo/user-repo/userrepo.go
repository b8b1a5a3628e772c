package userrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

const userColumns = "id, email, password, full_name, phone, balance, role, created_at"

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row storage.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.Balance, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.db.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email))
	if errors.Is(err, storage.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.db.FetchOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if errors.Is(err, storage.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := "INSERT INTO users (email, password, full_name, phone, role) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.Execute(ctx, query, user.Email, user.PasswordHash, user.FullName, user.Phone, user.Role)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	user.ID = res.InsertedID
	return user, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id int64, fullName string, phone *string) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE users SET full_name = ?, phone = ? WHERE id = ?", fullName, phone, id)
	if err != nil {
		zap.L().Error("can't update profile", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.FetchAll(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at DESC, id DESC")
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *Repository) SetRole(ctx context.Context, id int64, role domain.Role) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE users SET role = ? WHERE id = ?", role, id)
	if err != nil {
		zap.L().Error("can't change role", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE users SET role = ? WHERE email = ?", role, email)
	if err != nil {
		zap.L().Error("can't change role", zap.String("email", email), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) Role(ctx context.Context, id int64) (domain.Role, error) {
	var role domain.Role
	err := r.db.FetchOne(ctx, "SELECT role FROM users WHERE id = ?", id).Scan(&role)
	if errors.Is(err, storage.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("can't read role", zap.Int64("id", id), zap.Error(err))
		return "", err
	}
	return role, nil
}

func (r *Repository) Balance(ctx context.Context, id int64) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	err := r.db.FetchOne(ctx, "SELECT balance FROM users WHERE id = ?", id).Scan(&balance)
	if errors.Is(err, storage.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		zap.L().Error("can't read balance", zap.Int64("id", id), zap.Error(err))
		return decimal.Zero, false, err
	}
	return balance, true, nil
}

// Credit adds amount to the balance. The result is rounded to cents so a REAL column on SQLite
// stays equal to the sum of the recorded transactions. It reports false when the user does not exist.
func (r *Repository) Credit(ctx context.Context, id int64, amount decimal.Decimal) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE users SET balance = ROUND(balance + ?, 2) WHERE id = ?", amount, id)
	if err != nil {
		zap.L().Error("can't credit balance", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

// Debit subtracts amount only while the balance covers it, so concurrent debits can never overdraw.
// It reports false when nothing was debited.
func (r *Repository) Debit(ctx context.Context, id int64, amount decimal.Decimal) (bool, error) {
	res, err := r.db.Execute(ctx, "UPDATE users SET balance = ROUND(balance - ?, 2) WHERE id = ? AND ROUND(balance, 2) >= ROUND(?, 2)", amount, id, amount)
	if err != nil {
		zap.L().Error("can't debit balance", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.FetchOne(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return n, nil
}
