package users

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/dto"
	"github.com/GlebRadaev/goinvest/pkg/auth"
	"github.com/GlebRadaev/goinvest/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type UserService interface {
	Profile(ctx context.Context, userID int64) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, fullName string, phone *string) (*domain.User, error)
}

type Ledger interface {
	TopUp(ctx context.Context, userID int64, amount decimal.Decimal, description string) (decimal.Decimal, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, method, address string) (decimal.Decimal, error)
	Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

type UserHandler struct {
	userService UserService
	ledger      Ledger
}

func New(userService UserService, ledger Ledger) *UserHandler {
	return &UserHandler{
		userService: userService,
		ledger:      ledger,
	}
}

// Profile godoc
//
//	@Summary		Get user profile
//	@Description	Profile of the authenticated user with stats of the active investments
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	profile, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		User: dto.NewUserProfileDTO(&profile.User),
		Stats: dto.PortfolioStatsDTO{
			TotalInvestments: profile.Stats.TotalInvestments,
			TotalInvested:    profile.Stats.TotalInvested,
			CurrentValue:     profile.Stats.CurrentValue,
			Profit:           profile.Stats.Profit,
		},
	})
}

// UpdateProfile godoc
//
//	@Summary		Update user profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"New profile data"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.UpdateProfileRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	if _, err := h.userService.UpdateProfile(r.Context(), userID, req.FullName, req.Phone); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Profile updated"})
}

// AddBalance godoc
//
//	@Summary		Top up balance
//	@Description	Credit the balance directly and record a deposit transaction
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount to add"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/balance/add [post]
func (h *UserHandler) AddBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.AmountRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	balance, err := h.ledger.TopUp(r.Context(), userID, req.Amount, "")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Message: "Balance topped up", Balance: balance})
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Debit the balance for a payout to an external account
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/balance/withdraw [post]
func (h *UserHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.WithdrawRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	balance, err := h.ledger.Withdraw(r.Context(), userID, req.Amount, req.Method, req.Address)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Message: "Withdrawal accepted", Balance: balance})
}

// Transactions godoc
//
//	@Summary		Get transaction history
//	@Description	Every balance change of the authenticated user, newest first
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/transactions [get]
func (h *UserHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	txs, err := h.ledger.Transactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionDTO, len(txs))
	for i := range txs {
		response[i] = dto.NewTransactionDTO(&txs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
