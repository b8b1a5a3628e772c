package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserSummary struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"fullName"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string" example:"1000.00"`
	Role     string          `json:"role" example:"user"`
}

type UserProfileDTO struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Phone     *string         `json:"phone"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"string" example:"1000.00"`
	Role      string          `json:"role" example:"user"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PortfolioStatsDTO struct {
	TotalInvestments int             `json:"totalInvestments"`
	TotalInvested    decimal.Decimal `json:"totalInvested" swaggertype:"string" example:"500.00"`
	CurrentValue     decimal.Decimal `json:"currentValue" swaggertype:"string" example:"500.00"`
	Profit           decimal.Decimal `json:"profit" swaggertype:"string" example:"0"`
}

type ProfileResponseDTO struct {
	User  UserProfileDTO    `json:"user"`
	Stats PortfolioStatsDTO `json:"stats"`
}

type UpdateProfileRequestDTO struct {
	FullName string  `json:"fullName" validate:"required,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"100"`
}

type WithdrawRequestDTO struct {
	Amount  decimal.Decimal `json:"amount" swaggertype:"number" example:"100"`
	Method  string          `json:"method" validate:"required,max=50" example:"usdt_trc20"`
	Address string          `json:"address" validate:"required,max=500" example:"TQ5n..."`
}

type BalanceResponseDTO struct {
	Message string          `json:"message"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"1100.00"`
}

type TransactionDTO struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type" example:"deposit"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
