package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/goinvest/docs"
	"github.com/GlebRadaev/goinvest/internal/dto"
	adminhandlers "github.com/GlebRadaev/goinvest/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/goinvest/internal/handlers/auth"
	investmenthandlers "github.com/GlebRadaev/goinvest/internal/handlers/investments"
	paymenthandlers "github.com/GlebRadaev/goinvest/internal/handlers/payments"
	socialhandlers "github.com/GlebRadaev/goinvest/internal/handlers/social"
	userhandlers "github.com/GlebRadaev/goinvest/internal/handlers/users"
	"github.com/GlebRadaev/goinvest/internal/service"
	"github.com/GlebRadaev/goinvest/pkg/auth"
	"github.com/GlebRadaev/goinvest/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	AddBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
}

type InvestmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Invest(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Settings(w http.ResponseWriter, r *http.Request)
	CryptoRequest(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	PaymentLink(w http.ResponseWriter, r *http.Request)
}

type SocialHandler interface {
	Public(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Users(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
	Investments(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	PaymentSettings(w http.ResponseWriter, r *http.Request)
	UpdatePaymentSetting(w http.ResponseWriter, r *http.Request)
	SetQRCode(w http.ResponseWriter, r *http.Request)
	PaymentRequests(w http.ResponseWriter, r *http.Request)
	ProcessPaymentRequest(w http.ResponseWriter, r *http.Request)
	SocialLinks(w http.ResponseWriter, r *http.Request)
	UpdateSocialLinks(w http.ResponseWriter, r *http.Request)
}

type Options struct {
	CORSOrigins []string
	Logger      zerolog.Logger
}

type Handlers struct {
	AuthHandler       AuthHandler
	UserHandler       UserHandler
	InvestmentHandler InvestmentHandler
	PaymentHandler    PaymentHandler
	SocialHandler     SocialHandler
	AdminHandler      AdminHandler

	JWT    auth.JWTServiceInterface
	Admins auth.AdminChecker
	opts   Options
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		UserHandler:       userhandlers.New(s.UserService, s.LedgerService),
		InvestmentHandler: investmenthandlers.New(s.ProductService, s.LedgerService),
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		SocialHandler:     socialhandlers.New(s.SocialService),
		AdminHandler: adminhandlers.New(s.UserService, s.ProductService, s.LedgerService,
			s.PaymentService, s.SocialService),
		JWT:    s.JWTService,
		Admins: s.UserService,
		opts:   opts,
	}
}

// Health godoc
//
//	@Summary	Health check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	dto.HealthResponseDTO
//	@Router		/api/health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{
		Status:  "OK",
		Message: "Server is running",
	})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	origins := h.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		hlog.NewHandler(h.opts.Logger),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	authMiddleware := auth.AuthMiddleware(h.JWT)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)
		r.Get("/social-links", h.SocialHandler.Public)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/profile", h.UserHandler.Profile)
			r.Put("/profile", h.UserHandler.UpdateProfile)
			r.Post("/balance/add", h.UserHandler.AddBalance)
			r.Post("/balance/withdraw", h.UserHandler.Withdraw)
			r.Get("/transactions", h.UserHandler.Transactions)
		})

		r.Route("/investments", func(r chi.Router) {
			r.Get("/", h.InvestmentHandler.List)
			r.Get("/{id}", h.InvestmentHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/invest", h.InvestmentHandler.Invest)
				r.Get("/my/all", h.InvestmentHandler.My)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/settings", h.PaymentHandler.Settings)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/crypto/request", h.PaymentHandler.CryptoRequest)
				r.Get("/history", h.PaymentHandler.History)
				r.Get("/stripe/payment-link", h.PaymentHandler.PaymentLink)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware, auth.AdminMiddleware(h.Admins))
			r.Get("/users", h.AdminHandler.Users)
			r.Put("/users/{id}/role", h.AdminHandler.ChangeRole)
			r.Get("/stats", h.AdminHandler.Stats)
			r.Post("/products", h.AdminHandler.CreateProduct)
			r.Put("/products/{id}", h.AdminHandler.UpdateProduct)
			r.Delete("/products/{id}", h.AdminHandler.DeleteProduct)
			r.Get("/investments", h.AdminHandler.Investments)
			r.Get("/payment-settings", h.AdminHandler.PaymentSettings)
			r.Put("/payment-settings/{method}", h.AdminHandler.UpdatePaymentSetting)
			r.Put("/payment-settings/{method}/qr", h.AdminHandler.SetQRCode)
			r.Get("/payment-requests", h.AdminHandler.PaymentRequests)
			r.Put("/payment-requests/{id}", h.AdminHandler.ProcessPaymentRequest)
			r.Get("/social-links", h.AdminHandler.SocialLinks)
			r.Put("/social-links", h.AdminHandler.UpdateSocialLinks)
		})
	})

	return r
}
