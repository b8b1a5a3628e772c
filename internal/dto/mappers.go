package dto

import "github.com/GlebRadaev/goinvest/internal/domain"

func NewUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Balance:  u.Balance,
		Role:     string(u.Role),
	}
}

func NewUserProfileDTO(u *domain.User) UserProfileDTO {
	return UserProfileDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Balance:   u.Balance,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		MinInvestment:  p.MinInvestment,
		ExpectedReturn: p.ExpectedReturn,
		DurationMonths: p.DurationMonths,
		RiskLevel:      string(p.RiskLevel),
		Category:       string(p.Category),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

// ToProduct builds the product an admin submitted. A missing is_active means active.
func (r ProductRequestDTO) ToProduct(id int64) *domain.Product {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Product{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		MinInvestment:  r.MinInvestment,
		ExpectedReturn: r.ExpectedReturn,
		DurationMonths: r.DurationMonths,
		RiskLevel:      domain.RiskLevel(r.RiskLevel),
		Category:       domain.Category(r.Category),
		IsActive:       active,
	}
}

func NewInvestmentDTO(d *domain.InvestmentDetails) InvestmentDTO {
	return InvestmentDTO{
		ID:             d.ID,
		UserID:         d.UserID,
		ProductID:      d.ProductID,
		Amount:         d.Amount,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         string(d.Status),
		CurrentValue:   d.CurrentValue,
		ProductName:    d.ProductName,
		ExpectedReturn: d.ExpectedReturn,
		RiskLevel:      string(d.RiskLevel),
		Category:       string(d.Category),
		UserEmail:      d.UserEmail,
		UserName:       d.UserName,
	}
}

func NewTransactionDTO(t *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func NewPaymentRequestDTO(pr *domain.PaymentRequest) PaymentRequestDTO {
	return PaymentRequestDTO{
		ID:              pr.ID,
		UserID:          pr.UserID,
		PaymentMethod:   pr.PaymentMethod,
		Amount:          pr.Amount,
		Status:          string(pr.Status),
		TransactionHash: pr.TransactionHash,
		ScreenshotPath:  pr.ScreenshotPath,
		CreatedAt:       pr.CreatedAt,
		ProcessedAt:     pr.ProcessedAt,
		ProcessedBy:     pr.ProcessedBy,
		Notes:           pr.Notes,
	}
}

func NewPaymentSettingDTO(s *domain.PaymentSettingView) PaymentSettingDTO {
	return PaymentSettingDTO{
		PaymentMethod: s.PaymentMethod,
		Address:       s.Address,
		QRCodePath:    s.QRCodePath,
		QRCodeURL:     s.QRCodeURL,
		IsActive:      s.IsActive,
		UpdatedAt:     s.UpdatedAt,
	}
}

func NewPaymentRequestDetailsDTO(d *domain.PaymentRequestDetails) PaymentRequestDTO {
	out := NewPaymentRequestDTO(&d.PaymentRequest)
	out.UserEmail = d.UserEmail
	out.UserName = d.UserName
	return out
}
