// Package ledgerservice owns every flow that changes a user balance. Each flow runs in a single
// transaction and every balance change is recorded as exactly one transaction row.
package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/metrics"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type UserRepo interface {
	Balance(ctx context.Context, id int64) (decimal.Decimal, bool, error)
	Credit(ctx context.Context, id int64, amount decimal.Decimal) (bool, error)
	Debit(ctx context.Context, id int64, amount decimal.Decimal) (bool, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
}

type InvestmentRepo interface {
	Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	Complete(ctx context.Context, id int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.InvestmentDetails, error)
	ListAll(ctx context.Context) ([]domain.InvestmentDetails, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

type PaymentRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.PaymentRequest, error)
	Process(ctx context.Context, id int64, status domain.PaymentStatus, adminID int64, notes *string, at time.Time) (bool, error)
}

var (
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be positive with at most two decimal places", domain.ErrValidation)
	ErrInvalidStatus       = fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	ErrAlreadyProcessed    = fmt.Errorf("%w: payment request already processed", domain.ErrValidation)
	ErrBelowMinimum        = fmt.Errorf("%w: amount is below the minimum investment", domain.ErrValidation)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", domain.ErrValidation)
	ErrMissingMethod       = fmt.Errorf("%w: withdrawal method and address are required", domain.ErrValidation)
	ErrAlreadySettled      = fmt.Errorf("%w: investment already settled", domain.ErrValidation)
	ErrRequestNotFound     = fmt.Errorf("%w: payment request not found", domain.ErrNotFound)
	ErrProductNotFound     = fmt.Errorf("%w: product not found or inactive", domain.ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("%w: user not found", domain.ErrNotFound)
)

type Service struct {
	txManager    storage.TXManager
	users        UserRepo
	products     ProductRepo
	investments  InvestmentRepo
	transactions TransactionRepo
	payments     PaymentRepo
	now          func() time.Time
}

func New(txManager storage.TXManager, users UserRepo, products ProductRepo, investments InvestmentRepo,
	transactions TransactionRepo, payments PaymentRepo) *Service {
	return &Service{
		txManager:    txManager,
		users:        users,
		products:     products,
		investments:  investments,
		transactions: transactions,
		payments:     payments,
		now:          time.Now,
	}
}

// clock returns the current time in UTC at second precision so stored timestamps compare the same
// way on both backends.
func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// ProcessPaymentRequest approves or rejects a pending deposit request. Approval credits the amount
// and records a deposit; rejection only closes the request.
func (s *Service) ProcessPaymentRequest(ctx context.Context, requestID, adminID int64, status domain.PaymentStatus, notes *string) (req *domain.PaymentRequest, err error) {
	defer func(start time.Time) { metrics.Observe("process_payment_request", start, err) }(time.Now())

	if status != domain.PaymentApproved && status != domain.PaymentRejected {
		return nil, ErrInvalidStatus
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		found, err := s.payments.FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrRequestNotFound
		}
		if found.Status != domain.PaymentPending {
			return ErrAlreadyProcessed
		}

		at := s.clock()
		processed, err := s.payments.Process(ctx, requestID, status, adminID, notes, at)
		if err != nil {
			return err
		}
		if !processed {
			return ErrAlreadyProcessed
		}

		if status == domain.PaymentApproved {
			if err := s.post(ctx, found.UserID, domain.TransactionDeposit, found.Amount, "Deposit via "+found.PaymentMethod); err != nil {
				return err
			}
		}

		found.Status = status
		found.ProcessedAt = &at
		found.ProcessedBy = &adminID
		found.Notes = notes
		req = found
		return nil
	})
	if err != nil {
		zap.L().Error("failed to process payment request", zap.Int64("request_id", requestID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment request processed", zap.Int64("request_id", requestID), zap.String("status", string(status)))
	return req, nil
}

// Invest buys into a product: the investment row, the debit and the investment transaction are
// written together or not at all.
func (s *Service) Invest(ctx context.Context, userID, productID int64, amount decimal.Decimal) (inv *domain.Investment, err error) {
	defer func(start time.Time) { metrics.Observe("invest", start, err) }(time.Now())

	if !domain.ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil || !product.IsActive {
			return ErrProductNotFound
		}
		if amount.LessThan(product.MinInvestment) {
			return fmt.Errorf("%w: minimum is %s", ErrBelowMinimum, product.MinInvestment.StringFixed(2))
		}

		balance, found, err := s.users.Balance(ctx, userID)
		if err != nil {
			return err
		}
		if !found {
			return ErrUserNotFound
		}
		if balance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		start := s.clock()
		inv, err = s.investments.Create(ctx, &domain.Investment{
			UserID:       userID,
			ProductID:    productID,
			Amount:       amount,
			StartDate:    start,
			EndDate:      start.AddDate(0, product.DurationMonths, 0),
			Status:       domain.InvestmentActive,
			CurrentValue: amount,
		})
		if err != nil {
			return err
		}

		return s.post(ctx, userID, domain.TransactionInvestment, amount, "Investment in "+product.Name)
	})
	if err != nil {
		zap.L().Error("failed to invest", zap.Int64("user_id", userID), zap.Int64("product_id", productID), zap.Error(err))
		return nil, err
	}
	return inv, nil
}

// TopUp credits the balance directly and returns the new balance.
func (s *Service) TopUp(ctx context.Context, userID int64, amount decimal.Decimal, description string) (balance decimal.Decimal, err error) {
	defer func(start time.Time) { metrics.Observe("top_up", start, err) }(time.Now())

	if !domain.ValidAmount(amount) {
		return decimal.Zero, ErrInvalidAmount
	}
	if description == "" {
		description = "Balance top-up"
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.post(ctx, userID, domain.TransactionDeposit, amount, description); err != nil {
			return err
		}
		balance, _, err = s.users.Balance(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to top up balance", zap.Int64("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// Withdraw debits the balance for a payout to an external account and returns the new balance.
func (s *Service) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, method, address string) (balance decimal.Decimal, err error) {
	defer func(start time.Time) { metrics.Observe("withdraw", start, err) }(time.Now())

	if !domain.ValidAmount(amount) {
		return decimal.Zero, ErrInvalidAmount
	}
	if method == "" || address == "" {
		return decimal.Zero, ErrMissingMethod
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, found, err := s.users.Balance(ctx, userID)
		if err != nil {
			return err
		}
		if !found {
			return ErrUserNotFound
		}
		if current.LessThan(amount) {
			return ErrInsufficientBalance
		}
		if err := s.post(ctx, userID, domain.TransactionWithdrawal, amount, fmt.Sprintf("Withdrawal via %s to %s", method, address)); err != nil {
			return err
		}
		balance, _, err = s.users.Balance(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to withdraw", zap.Int64("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// Settle completes a matured investment and pays its current value back to the owner. Settling the
// same investment twice fails with ErrAlreadySettled and pays nothing.
func (s *Service) Settle(ctx context.Context, inv domain.Investment) (err error) {
	defer func(start time.Time) { metrics.Observe("settle", start, err) }(time.Now())

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		completed, err := s.investments.Complete(ctx, inv.ID)
		if err != nil {
			return err
		}
		if !completed {
			return ErrAlreadySettled
		}
		return s.post(ctx, inv.UserID, domain.TransactionPayout, inv.CurrentValue, fmt.Sprintf("Payout for investment #%d", inv.ID))
	})
	if err != nil {
		zap.L().Error("failed to settle investment", zap.Int64("investment_id", inv.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	txs, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Investments returns the user's investments with their products, newest first.
func (s *Service) Investments(ctx context.Context, userID int64) ([]domain.InvestmentDetails, error) {
	investments, err := s.investments.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch investments", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return investments, nil
}

func (s *Service) AllInvestments(ctx context.Context) ([]domain.InvestmentDetails, error) {
	investments, err := s.investments.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch investments", zap.Error(err))
		return nil, err
	}
	return investments, nil
}

// post applies one balance change and records it. Deposits and payouts credit, everything else
// debits with the conditional update, so a debit that the balance no longer covers fails here.
func (s *Service) post(ctx context.Context, userID int64, kind domain.TransactionType, amount decimal.Decimal, description string) error {
	var (
		applied bool
		err     error
	)
	switch kind {
	case domain.TransactionDeposit, domain.TransactionPayout:
		applied, err = s.users.Credit(ctx, userID, amount)
	default:
		applied, err = s.users.Debit(ctx, userID, amount)
	}
	if err != nil {
		return err
	}
	if !applied {
		if kind == domain.TransactionDeposit || kind == domain.TransactionPayout {
			return ErrUserNotFound
		}
		return ErrInsufficientBalance
	}

	_, err = s.transactions.Create(ctx, &domain.Transaction{
		UserID:      userID,
		Type:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   s.clock(),
	})
	return err
}
