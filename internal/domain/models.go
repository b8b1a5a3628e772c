package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation marks rejections caused by the caller's input or by the current state.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks rejections for entities that do not exist.
	ErrNotFound = errors.New("not found")
)

// MoneyScale is the number of decimal places every stored amount keeps.
const MoneyScale = 2

// ValidAmount reports whether d is positive and needs no rounding to be stored.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(MoneyScale))
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type RiskLevel string

const (
	RiskMinimal RiskLevel = "minimal"
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskMinimal, RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

type Category string

const (
	CategoryBonds       Category = "bonds"
	CategoryStocks      Category = "stocks"
	CategoryRealEstate  Category = "real_estate"
	CategoryVenture     Category = "venture"
	CategoryDeposits    Category = "deposits"
	CategoryCommodities Category = "commodities"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBonds, CategoryStocks, CategoryRealEstate, CategoryVenture, CategoryDeposits, CategoryCommodities:
		return true
	}
	return false
}

type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionInvestment TransactionType = "investment"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionPayout     TransactionType = "payout"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

type User struct {
	ID           int64           `db:"id"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password"`
	FullName     string          `db:"full_name"`
	Phone        *string         `db:"phone"`
	Balance      decimal.Decimal `db:"balance"`
	Role         Role            `db:"role"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Product struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	MinInvestment  decimal.Decimal `db:"min_investment"`
	ExpectedReturn decimal.Decimal `db:"expected_return"`
	DurationMonths int             `db:"duration_months"`
	RiskLevel      RiskLevel       `db:"risk_level"`
	Category       Category        `db:"category"`
	IsActive       bool            `db:"is_active"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Investment struct {
	ID           int64            `db:"id"`
	UserID       int64            `db:"user_id"`
	ProductID    int64            `db:"product_id"`
	Amount       decimal.Decimal  `db:"amount"`
	StartDate    time.Time        `db:"start_date"`
	EndDate      time.Time        `db:"end_date"`
	Status       InvestmentStatus `db:"status"`
	CurrentValue decimal.Decimal  `db:"current_value"`
}

// InvestmentDetails is an investment joined with the product it was bought from. The owner fields
// are filled only for admin listings.
type InvestmentDetails struct {
	Investment
	ProductName    string          `db:"product_name"`
	ExpectedReturn decimal.Decimal `db:"expected_return"`
	RiskLevel      RiskLevel       `db:"risk_level"`
	Category       Category        `db:"category"`
	UserEmail      string          `db:"user_email"`
	UserName       string          `db:"user_name"`
}

type Transaction struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Type        TransactionType `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

type PaymentRequest struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	PaymentMethod   string          `db:"payment_method"`
	Amount          decimal.Decimal `db:"amount"`
	Status          PaymentStatus   `db:"status"`
	TransactionHash *string         `db:"transaction_hash"`
	ScreenshotPath  *string         `db:"screenshot_path"`
	CreatedAt       time.Time       `db:"created_at"`
	ProcessedAt     *time.Time      `db:"processed_at"`
	ProcessedBy     *int64          `db:"processed_by"`
	Notes           *string         `db:"notes"`
}

// PaymentRequestDetails adds the requester's identity for the admin queue.
type PaymentRequestDetails struct {
	PaymentRequest
	UserEmail string `db:"email"`
	UserName  string `db:"full_name"`
}

type PaymentSetting struct {
	ID            int64     `db:"id"`
	PaymentMethod string    `db:"payment_method"`
	Address       string    `db:"address"`
	QRCodePath    *string   `db:"qr_code_path"`
	IsActive      bool      `db:"is_active"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type SocialLink struct {
	ID        int64     `db:"id"`
	Platform  string    `db:"platform"`
	URL       string    `db:"url"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PortfolioStats is derived from the user's active investments on every read.
type PortfolioStats struct {
	TotalInvestments int
	TotalInvested    decimal.Decimal
	CurrentValue     decimal.Decimal
	Profit           decimal.Decimal
}

type PlatformStats struct {
	TotalUsers        int
	TotalInvestments  int
	TotalInvested     decimal.Decimal
	ActiveInvestments int
	TotalProducts     int
}

type Profile struct {
	User  User
	Stats PortfolioStats
}

// PaymentSettingView is a payment setting with the public URL of its QR code image.
type PaymentSettingView struct {
	PaymentSetting
	QRCodeURL string
}
