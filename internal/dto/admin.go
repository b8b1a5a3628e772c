package dto

import "github.com/shopspring/decimal"

type PlatformStatsDTO struct {
	TotalUsers          int             `json:"totalUsers"`
	TotalInvestments    int             `json:"totalInvestments"`
	TotalInvestedAmount decimal.Decimal `json:"totalInvestedAmount" swaggertype:"string" example:"15000.00"`
	ActiveInvestments   int             `json:"activeInvestments"`
	TotalProducts       int             `json:"totalProducts"`
}

type ChangeRoleRequestDTO struct {
	Role string `json:"role" validate:"required" example:"admin"`
}

type SocialLinkDTO struct {
	Platform string `json:"platform" example:"telegram"`
	URL      string `json:"url"`
	IsActive bool   `json:"is_active"`
}

type SocialLinkUpdateDTO struct {
	URL      string `json:"url" validate:"max=500"`
	IsActive bool   `json:"is_active"`
}
