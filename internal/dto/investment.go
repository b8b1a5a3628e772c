package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	MinInvestment  decimal.Decimal `json:"min_investment" swaggertype:"string" example:"500"`
	ExpectedReturn decimal.Decimal `json:"expected_return" swaggertype:"string" example:"8.5"`
	DurationMonths int             `json:"duration_months" example:"12"`
	RiskLevel      string          `json:"risk_level" example:"low"`
	Category       string          `json:"category" example:"bonds"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ProductRequestDTO struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Description    string          `json:"description"`
	MinInvestment  decimal.Decimal `json:"min_investment" swaggertype:"number" example:"500"`
	ExpectedReturn decimal.Decimal `json:"expected_return" swaggertype:"number" example:"8.5"`
	DurationMonths int             `json:"duration_months" validate:"required,min=1,max=600" example:"12"`
	RiskLevel      string          `json:"risk_level" validate:"required,oneof=minimal low medium high" example:"low"`
	Category       string          `json:"category" validate:"required,oneof=bonds stocks real_estate venture deposits commodities" example:"bonds"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

type ProductCreatedResponseDTO struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

type InvestRequestDTO struct {
	ProductID int64           `json:"productId" validate:"required,gt=0" example:"1"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"500"`
}

type InvestResponseDTO struct {
	Message      string `json:"message"`
	InvestmentID int64  `json:"investmentId"`
}

type InvestmentDTO struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	ProductID      int64           `json:"product_id"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Status         string          `json:"status" example:"active"`
	CurrentValue   decimal.Decimal `json:"current_value" swaggertype:"string" example:"500.00"`
	ProductName    string          `json:"product_name"`
	ExpectedReturn decimal.Decimal `json:"expected_return,omitempty" swaggertype:"string" example:"8.5"`
	RiskLevel      string          `json:"risk_level,omitempty"`
	Category       string          `json:"category,omitempty"`
	UserEmail      string          `json:"user_email,omitempty"`
	UserName       string          `json:"user_name,omitempty"`
}
