package service

import (
	"github.com/GlebRadaev/goinvest/internal/config"
	"github.com/GlebRadaev/goinvest/internal/repo"
	"github.com/GlebRadaev/goinvest/internal/service/authservice"
	"github.com/GlebRadaev/goinvest/internal/service/ledgerservice"
	"github.com/GlebRadaev/goinvest/internal/service/paymentservice"
	"github.com/GlebRadaev/goinvest/internal/service/productservice"
	"github.com/GlebRadaev/goinvest/internal/service/socialservice"
	"github.com/GlebRadaev/goinvest/internal/service/userservice"
	"github.com/GlebRadaev/goinvest/internal/storage"
	pkgauth "github.com/GlebRadaev/goinvest/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	UserService    *userservice.Service
	ProductService *productservice.Service
	LedgerService  *ledgerservice.Service
	PaymentService *paymentservice.Service
	SocialService  *socialservice.Service
	JWTService     *pkgauth.JWTService
}

func New(repos *repo.Repositories, txManager storage.TXManager, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	return &Services{
		AuthService:    authservice.New(repos.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL),
		UserService:    userservice.New(repos.UserRepo, repos.InvestmentRepo, repos.ProductRepo),
		ProductService: productservice.New(txManager, repos.ProductRepo),
		LedgerService: ledgerservice.New(txManager, repos.UserRepo, repos.ProductRepo, repos.InvestmentRepo,
			repos.TransactionRepo, repos.PaymentRepo),
		PaymentService: paymentservice.New(txManager, repos.SettingRepo, repos.PaymentRepo, paymentservice.Options{
			PaymentLink:    cfg.StripePaymentLink,
			UploadsBaseURL: cfg.UploadsBaseURL,
		}),
		SocialService: socialservice.New(txManager, repos.SocialRepo),
		JWTService:    jwtService,
	}
}
