package repo

import (
	investmentrepo "github.com/GlebRadaev/goinvest/internal/repo/investment-repo"
	paymentrepo "github.com/GlebRadaev/goinvest/internal/repo/payment-repo"
	productrepo "github.com/GlebRadaev/goinvest/internal/repo/product-repo"
	settingrepo "github.com/GlebRadaev/goinvest/internal/repo/setting-repo"
	socialrepo "github.com/GlebRadaev/goinvest/internal/repo/social-repo"
	transactionrepo "github.com/GlebRadaev/goinvest/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/goinvest/internal/repo/user-repo"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

// Repositories are concrete because one repository usually serves the narrow interfaces of several
// services.
type Repositories struct {
	UserRepo        *userrepo.Repository
	ProductRepo     *productrepo.Repository
	InvestmentRepo  *investmentrepo.Repository
	TransactionRepo *transactionrepo.Repository
	PaymentRepo     *paymentrepo.Repository
	SettingRepo     *settingrepo.Repository
	SocialRepo      *socialrepo.Repository
}

func New(db storage.Adapter) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(db),
		ProductRepo:     productrepo.New(db),
		InvestmentRepo:  investmentrepo.New(db),
		TransactionRepo: transactionrepo.New(db),
		PaymentRepo:     paymentrepo.New(db),
		SettingRepo:     settingrepo.New(db),
		SocialRepo:      socialrepo.New(db),
	}
}
