package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/dto"
	"github.com/GlebRadaev/goinvest/pkg/auth"
	"github.com/GlebRadaev/goinvest/pkg/utils"
	"github.com/GlebRadaev/goinvest/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	ChangeRole(ctx context.Context, userID int64, role domain.Role) error
	PlatformStats(ctx context.Context) (domain.PlatformStats, error)
}

type ProductService interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Deactivate(ctx context.Context, id int64) error
}

type Ledger interface {
	AllInvestments(ctx context.Context) ([]domain.InvestmentDetails, error)
	ProcessPaymentRequest(ctx context.Context, requestID, adminID int64, status domain.PaymentStatus, notes *string) (*domain.PaymentRequest, error)
}

type PaymentService interface {
	Settings(ctx context.Context) ([]domain.PaymentSettingView, error)
	UpdateSetting(ctx context.Context, method, address string, active bool) error
	SetQRCode(ctx context.Context, method, ref string) (string, error)
	ListRequests(ctx context.Context) ([]domain.PaymentRequestDetails, error)
}

type SocialService interface {
	List(ctx context.Context) ([]domain.SocialLink, error)
	Update(ctx context.Context, links map[string]domain.SocialLink) error
}

type AdminHandler struct {
	users    UserService
	products ProductService
	ledger   Ledger
	payments PaymentService
	social   SocialService
}

func New(users UserService, products ProductService, ledger Ledger, payments PaymentService, social SocialService) *AdminHandler {
	return &AdminHandler{
		users:    users,
		products: products,
		ledger:   ledger,
		payments: payments,
		social:   social,
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Users godoc
//
//	@Summary	List users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.UserProfileDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Access denied"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.UserProfileDTO, len(users))
	for i := range users {
		response[i] = dto.NewUserProfileDTO(&users[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Stats godoc
//
//	@Summary	Platform statistics
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.PlatformStatsDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Access denied"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.users.PlatformStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlatformStatsDTO{
		TotalUsers:          stats.TotalUsers,
		TotalInvestments:    stats.TotalInvestments,
		TotalInvestedAmount: stats.TotalInvested,
		ActiveInvestments:   stats.ActiveInvestments,
		TotalProducts:       stats.TotalProducts,
	})
}

// CreateProduct godoc
//
//	@Summary	Create product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ProductRequestDTO	true	"Product"
//	@Success	201		{object}	dto.ProductCreatedResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid product"
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Failure	403		{object}	utils.Response	"Access denied"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	created, err := h.products.Create(r.Context(), req.ToProduct(0))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ProductCreatedResponseDTO{
		Message:   "Product created",
		ProductID: created.ID,
	})
}

// UpdateProduct godoc
//
//	@Summary	Update product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product ID"
//	@Param		request	body		dto.ProductRequestDTO	true	"Product"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid product"
//	@Failure	404		{object}	utils.Response	"Product not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req dto.ProductRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	if err := h.products.Update(r.Context(), req.ToProduct(id)); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Product updated"})
}

// DeleteProduct godoc
//
//	@Summary		Deactivate product
//	@Description	Products are never removed, only hidden from the catalog
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	if err := h.products.Deactivate(r.Context(), id); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Product deactivated"})
}

// Investments godoc
//
//	@Summary	List all investments
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.InvestmentDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/investments [get]
func (h *AdminHandler) Investments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.ledger.AllInvestments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.InvestmentDTO, len(investments))
	for i := range investments {
		response[i] = dto.NewInvestmentDTO(&investments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ChangeRole godoc
//
//	@Summary	Change user role
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"User ID"
//	@Param		request	body		dto.ChangeRoleRequestDTO	true	"Role"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid role"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/users/{id}/role [put]
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.ChangeRoleRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	if err := h.users.ChangeRole(r.Context(), id, domain.Role(req.Role)); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Role updated"})
}

// PaymentSettings godoc
//
//	@Summary	List all payment settings
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PaymentSettingDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/payment-settings [get]
func (h *AdminHandler) PaymentSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.payments.Settings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PaymentSettingDTO, len(settings))
	for i := range settings {
		response[i] = dto.NewPaymentSettingDTO(&settings[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePaymentSetting godoc
//
//	@Summary	Update payment setting
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		method	path		string								true	"Payment method"
//	@Param		request	body		dto.UpdatePaymentSettingRequestDTO	true	"Setting"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	404		{object}	utils.Response	"Payment setting not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/payment-settings/{method} [put]
func (h *AdminHandler) UpdatePaymentSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePaymentSettingRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	if err := h.payments.UpdateSetting(r.Context(), chi.URLParam(r, "method"), req.Address, req.IsActive); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Payment setting updated"})
}

// SetQRCode godoc
//
//	@Summary		Set payment QR code
//	@Description	Store the reference of an uploaded QR code image and return the replaced one
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			method	path		string					true	"Payment method"
//	@Param			request	body		dto.SetQRCodeRequestDTO	true	"QR code reference"
//	@Success		200		{object}	dto.QRCodeResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing reference"
//	@Failure		404		{object}	utils.Response	"Payment setting not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payment-settings/{method}/qr [put]
func (h *AdminHandler) SetQRCode(w http.ResponseWriter, r *http.Request) {
	var req dto.SetQRCodeRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	previous, err := h.payments.SetQRCode(r.Context(), chi.URLParam(r, "method"), req.QRCodePath)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QRCodeResponseDTO{
		Message:    "QR code updated",
		QRCodePath: req.QRCodePath,
		Previous:   previous,
	})
}

// PaymentRequests godoc
//
//	@Summary		List deposit requests
//	@Description	Pending requests first, newest first within each status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentRequestDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payment-requests [get]
func (h *AdminHandler) PaymentRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.payments.ListRequests(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PaymentRequestDTO, len(requests))
	for i := range requests {
		response[i] = dto.NewPaymentRequestDetailsDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ProcessPaymentRequest godoc
//
//	@Summary		Approve or reject a deposit request
//	@Description	Approval credits the user balance and records a deposit transaction
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Payment request ID"
//	@Param			request	body		dto.ProcessPaymentRequestDTO	true	"Decision"
//	@Success		200		{object}	dto.PaymentRequestDTO
//	@Failure		400		{object}	utils.Response	"Invalid status or already processed"
//	@Failure		404		{object}	utils.Response	"Payment request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payment-requests/{id} [put]
func (h *AdminHandler) ProcessPaymentRequest(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int64)

	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.ProcessPaymentRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}
	processed, err := h.ledger.ProcessPaymentRequest(r.Context(), id, adminID, domain.PaymentStatus(req.Status), notes)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentRequestDTO(processed))
}

// SocialLinks godoc
//
//	@Summary	List social links
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.SocialLinkDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/social-links [get]
func (h *AdminHandler) SocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.social.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.SocialLinkDTO, len(links))
	for i, l := range links {
		response[i] = dto.SocialLinkDTO{Platform: l.Platform, URL: l.URL, IsActive: l.IsActive}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateSocialLinks godoc
//
//	@Summary		Update social links
//	@Description	Body maps a platform name to its link. Platforms left out keep their current link.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		map[string]dto.SocialLinkUpdateDTO	true	"Links by platform"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/social-links [put]
func (h *AdminHandler) UpdateSocialLinks(w http.ResponseWriter, r *http.Request) {
	var req map[string]dto.SocialLinkUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	links := make(map[string]domain.SocialLink, len(req))
	for platform, l := range req {
		if err := validate.Struct(l); err != nil {
			utils.RespondWithDetails(w, http.StatusBadRequest, "Validation failed", validate.FormatValidationError(err))
			return
		}
		links[platform] = domain.SocialLink{Platform: platform, URL: l.URL, IsActive: l.IsActive}
	}
	if err := h.social.Update(r.Context(), links); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Social links updated"})
}
