package paymentservice

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

type SettingRepo interface {
	ListActive(ctx context.Context) ([]domain.PaymentSetting, error)
	List(ctx context.Context) ([]domain.PaymentSetting, error)
	Find(ctx context.Context, method string) (*domain.PaymentSetting, error)
	Update(ctx context.Context, method, address string, active bool, at time.Time) (bool, error)
	SetQRCode(ctx context.Context, method string, path *string, at time.Time) (bool, error)
}

type RequestRepo interface {
	Create(ctx context.Context, pr *domain.PaymentRequest) (*domain.PaymentRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentRequest, error)
	ListAll(ctx context.Context) ([]domain.PaymentRequestDetails, error)
}

// MinLinkAmount is the smallest card payment the hosted payment page accepts.
var MinLinkAmount = decimal.NewFromInt(10)

var (
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive with at most two decimal places", domain.ErrValidation)
	ErrMethodUnavailable = fmt.Errorf("%w: payment method is not available", domain.ErrValidation)
	ErrBelowLinkMinimum  = fmt.Errorf("%w: minimum amount is %s USD", domain.ErrValidation, MinLinkAmount)
	ErrLinkNotConfigured = fmt.Errorf("%w: payment link is not configured", domain.ErrValidation)
	ErrEmptyQRCode       = fmt.Errorf("%w: qr code reference is required", domain.ErrValidation)
	ErrSettingNotFound   = fmt.Errorf("%w: payment setting not found", domain.ErrNotFound)
)

type Options struct {
	PaymentLink    string
	UploadsBaseURL string
}

type Service struct {
	txManager storage.TXManager
	settings  SettingRepo
	requests  RequestRepo
	opts      Options
	now       func() time.Time
}

func New(txManager storage.TXManager, settings SettingRepo, requests RequestRepo, opts Options) *Service {
	return &Service{
		txManager: txManager,
		settings:  settings,
		requests:  requests,
		opts:      opts,
		now:       time.Now,
	}
}

func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

func (s *Service) qrCodeURL(ref *string) string {
	if ref == nil || *ref == "" {
		return ""
	}
	return strings.TrimRight(s.opts.UploadsBaseURL, "/") + "/" + path.Base(*ref)
}

func (s *Service) view(settings []domain.PaymentSetting) []domain.PaymentSettingView {
	out := make([]domain.PaymentSettingView, 0, len(settings))
	for _, setting := range settings {
		out = append(out, domain.PaymentSettingView{PaymentSetting: setting, QRCodeURL: s.qrCodeURL(setting.QRCodePath)})
	}
	return out
}

// ActiveSettings lists the deposit methods users can pay with.
func (s *Service) ActiveSettings(ctx context.Context) ([]domain.PaymentSettingView, error) {
	settings, err := s.settings.ListActive(ctx)
	if err != nil {
		zap.L().Error("can't get payment settings", zap.Error(err))
		return nil, err
	}
	return s.view(settings), nil
}

func (s *Service) Settings(ctx context.Context) ([]domain.PaymentSettingView, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		zap.L().Error("can't get payment settings", zap.Error(err))
		return nil, err
	}
	return s.view(settings), nil
}

func (s *Service) UpdateSetting(ctx context.Context, method, address string, active bool) error {
	updated, err := s.settings.Update(ctx, method, strings.TrimSpace(address), active, s.clock())
	if err != nil {
		zap.L().Error("can't update payment setting", zap.String("method", method), zap.Error(err))
		return err
	}
	if !updated {
		return ErrSettingNotFound
	}
	return nil
}

// SetQRCode attaches a new QR code image to a payment method and returns the reference it
// replaced so the caller can remove the old file.
func (s *Service) SetQRCode(ctx context.Context, method, ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", ErrEmptyQRCode
	}

	var previous string
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		setting, err := s.settings.Find(ctx, method)
		if err != nil {
			return err
		}
		if setting == nil {
			return ErrSettingNotFound
		}
		if setting.QRCodePath != nil {
			previous = *setting.QRCodePath
		}
		updated, err := s.settings.SetQRCode(ctx, method, &ref, s.clock())
		if err != nil {
			return err
		}
		if !updated {
			return ErrSettingNotFound
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't set qr code", zap.String("method", method), zap.Error(err))
		return "", err
	}
	return previous, nil
}

// CreateRequest files a manual deposit that waits for an admin decision.
func (s *Service) CreateRequest(ctx context.Context, userID int64, method string, amount decimal.Decimal, txHash, screenshot *string) (*domain.PaymentRequest, error) {
	if !domain.ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	setting, err := s.settings.Find(ctx, method)
	if err != nil {
		zap.L().Error("can't get payment setting", zap.String("method", method), zap.Error(err))
		return nil, err
	}
	if setting == nil || !setting.IsActive {
		return nil, ErrMethodUnavailable
	}

	req, err := s.requests.Create(ctx, &domain.PaymentRequest{
		UserID:          userID,
		PaymentMethod:   method,
		Amount:          amount,
		Status:          domain.PaymentPending,
		TransactionHash: txHash,
		ScreenshotPath:  screenshot,
		CreatedAt:       s.clock(),
	})
	if err != nil {
		zap.L().Error("can't create payment request", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment request created", zap.Int64("request_id", req.ID), zap.Int64("user_id", userID))
	return req, nil
}

func (s *Service) History(ctx context.Context, userID int64) ([]domain.PaymentRequest, error) {
	requests, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't get payment history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// ListRequests returns the admin queue: pending requests first, newest first within each group.
func (s *Service) ListRequests(ctx context.Context) ([]domain.PaymentRequestDetails, error) {
	requests, err := s.requests.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list payment requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// PaymentLink builds the hosted card payment URL for the user, with the amount prefilled in cents.
func (s *Service) PaymentLink(userID int64, amount decimal.Decimal) (string, error) {
	if amount.LessThan(MinLinkAmount) {
		return "", ErrBelowLinkMinimum
	}
	if s.opts.PaymentLink == "" {
		return "", ErrLinkNotConfigured
	}

	link, err := url.Parse(s.opts.PaymentLink)
	if err != nil {
		zap.L().Error("can't parse payment link", zap.Error(err))
		return "", err
	}
	query := link.Query()
	query.Set("client_reference_id", strconv.FormatInt(userID, 10))
	query.Set("prefilled_amount", amount.Shift(2).Round(0).String())
	link.RawQuery = query.Encode()
	return link.String(), nil
}
