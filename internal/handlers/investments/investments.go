package investments

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/dto"
	"github.com/GlebRadaev/goinvest/pkg/auth"
	"github.com/GlebRadaev/goinvest/pkg/utils"
)

//go:generate mockgen -source=investments.go -destination=mock_investments.go -package=investments

type ProductService interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
}

type Ledger interface {
	Invest(ctx context.Context, userID, productID int64, amount decimal.Decimal) (*domain.Investment, error)
	Investments(ctx context.Context, userID int64) ([]domain.InvestmentDetails, error)
}

type InvestmentHandler struct {
	products ProductService
	ledger   Ledger
}

func New(products ProductService, ledger Ledger) *InvestmentHandler {
	return &InvestmentHandler{
		products: products,
		ledger:   ledger,
	}
}

// List godoc
//
//	@Summary		List investment products
//	@Description	Active products ordered by expected return, highest first
//	@Tags			Investments
//	@Produce		json
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/investments [get]
func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ProductDTO, len(products))
	for i := range products {
		response[i] = dto.NewProductDTO(&products[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get investment product
//	@Tags		Investments
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	dto.ProductDTO
//	@Failure	400	{object}	utils.Response	"Invalid product id"
//	@Failure	404	{object}	utils.Response	"Product not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/investments/{id} [get]
func (h *InvestmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTO(product))
}

// Invest godoc
//
//	@Summary		Invest in a product
//	@Description	Debit the balance and open an investment that matures after the product duration
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InvestRequestDTO	true	"Investment request"
//	@Success		201		{object}	dto.InvestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, below minimum or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/investments/invest [post]
func (h *InvestmentHandler) Invest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.InvestRequestDTO
	if !utils.DecodeRequest(w, r, &req) {
		return
	}
	inv, err := h.ledger.Invest(r.Context(), userID, req.ProductID, req.Amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.InvestResponseDTO{
		Message:      "Investment created",
		InvestmentID: inv.ID,
	})
}

// My godoc
//
//	@Summary	List my investments
//	@Tags		Investments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.InvestmentDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/investments/my/all [get]
func (h *InvestmentHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	investments, err := h.ledger.Investments(r.Context(), userID)
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
