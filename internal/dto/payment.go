package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentSettingDTO struct {
	PaymentMethod string    `json:"payment_method" example:"bitcoin"`
	Address       string    `json:"address"`
	QRCodePath    *string   `json:"qr_code_path"`
	QRCodeURL     string    `json:"qr_code_url,omitempty"`
	IsActive      bool      `json:"is_active"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UpdatePaymentSettingRequestDTO struct {
	Address  string `json:"address" validate:"max=500"`
	IsActive bool   `json:"isActive"`
}

type SetQRCodeRequestDTO struct {
	QRCodePath string `json:"qrCodePath" validate:"required,max=500" example:"qr-bitcoin-1700000000.png"`
}

type QRCodeResponseDTO struct {
	Message    string `json:"message"`
	QRCodePath string `json:"qrCodePath"`
	Previous   string `json:"previous,omitempty"`
}

type CryptoPaymentRequestDTO struct {
	PaymentMethod   string          `json:"paymentMethod" validate:"required,max=50" example:"usdt_trc20"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"number" example:"200"`
	TransactionHash *string         `json:"transactionHash,omitempty" validate:"omitempty,max=255"`
	ScreenshotPath  *string         `json:"screenshotPath,omitempty" validate:"omitempty,max=500"`
}

type PaymentRequestCreatedDTO struct {
	Message   string `json:"message"`
	RequestID int64  `json:"requestId"`
}

type PaymentRequestDTO struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	PaymentMethod   string          `json:"payment_method"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"200.00"`
	Status          string          `json:"status" example:"pending"`
	TransactionHash *string         `json:"transaction_hash"`
	ScreenshotPath  *string         `json:"screenshot_path"`
	CreatedAt       time.Time       `json:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at"`
	ProcessedBy     *int64          `json:"processed_by"`
	Notes           *string         `json:"notes"`
	UserEmail       string          `json:"user_email,omitempty"`
	UserName        string          `json:"user_name,omitempty"`
}

type ProcessPaymentRequestDTO struct {
	Status string `json:"status" validate:"required" example:"approved"`
	Notes  string `json:"notes" validate:"max=1000"`
}

type PaymentLinkResponseDTO struct {
	URL string `json:"url"`
}
