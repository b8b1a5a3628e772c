package payments

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/dto"
	"github.com/GlebRadaev/goinvest/pkg/auth"
	"github.com/GlebRadaev/goinvest/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	ActiveSettings(ctx context.Context) ([]domain.PaymentSettingView, error)
	CreateRequest(ctx context.Context, userID int64, method string, amount decimal.Decimal, txHash, screenshot *string) (*domain.PaymentRequest, error)
	History(ctx context.Context, userID int64) ([]domain.PaymentRequest, error)
	PaymentLink(userID int64, amount decimal.Decimal) (string, error)
}

type PaymentHandler struct {
	service Service
}

func New(service Service) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// Settings godoc
//
//	@Summary		List payment methods
//	@Description	Active deposit methods with their addresses and QR code images
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{array}		dto.PaymentSettingDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/settings [get]
func (h *PaymentHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.ActiveSettings(r.Context())
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

// CryptoRequest godoc
//
//	@Summary		Create a deposit request
//	@Description	Register a crypto transfer that an administrator approves or rejects later
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CryptoPaymentRequestDTO	true	"Deposit request"
//	@Success		201		{object}	dto.PaymentRequestCreatedDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or unavailable method"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/crypto/request [post]
func (h *PaymentHandler) CryptoRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.CryptoPaymentRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	created, err := h.service.CreateRequest(r.Context(), userID, req.PaymentMethod, req.Amount, req.TransactionHash, req.ScreenshotPath)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentRequestCreatedDTO{
		Message:   "Payment request created. Awaiting administrator confirmation.",
		RequestID: created.ID,
	})
}

// History godoc
//
//	@Summary	List my deposit requests
//	@Tags		Payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PaymentRequestDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/payments/history [get]
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	requests, err := h.service.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PaymentRequestDTO, len(requests))
	for i := range requests {
		response[i] = dto.NewPaymentRequestDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PaymentLink godoc
//
//	@Summary		Build a card payment link
//	@Description	Hosted checkout link prefilled with the amount in cents and the user id
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			amount	query		number	true	"Amount in USD"
//	@Success		200		{object}	dto.PaymentLinkResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or link not configured"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/payments/stripe/payment-link [get]
func (h *PaymentHandler) PaymentLink(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	link, err := h.service.PaymentLink(userID, amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentLinkResponseDTO{URL: link})
}
