package socialservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

//go:generate mockgen -source=socialservice.go -destination=mock_socialservice.go -package=socialservice

type Repo interface {
	List(ctx context.Context) ([]domain.SocialLink, error)
	Upsert(ctx context.Context, platform, url string, active bool, at time.Time) error
}

var ErrEmptyPlatform = fmt.Errorf("%w: platform name is required", domain.ErrValidation)

type Service struct {
	txManager storage.TXManager
	repo      Repo
	now       func() time.Time
}

func New(txManager storage.TXManager, repo Repo) *Service {
	return &Service{
		txManager: txManager,
		repo:      repo,
		now:       time.Now,
	}
}

// Public maps each active platform with a non-empty url to that url.
func (s *Service) Public(ctx context.Context) (map[string]string, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("can't get social links", zap.Error(err))
		return nil, err
	}
	out := make(map[string]string)
	for _, l := range links {
		if l.IsActive && l.URL != "" {
			out[l.Platform] = l.URL
		}
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SocialLink, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("can't get social links", zap.Error(err))
		return nil, err
	}
	return links, nil
}

// Update saves every link in one transaction. Platforms not in the map keep their current link.
func (s *Service) Update(ctx context.Context, links map[string]domain.SocialLink) error {
	platforms := make([]string, 0, len(links))
	for platform := range links {
		if strings.TrimSpace(platform) == "" {
			return ErrEmptyPlatform
		}
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	at := s.now().UTC().Truncate(time.Second)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, platform := range platforms {
			link := links[platform]
			if err := s.repo.Upsert(ctx, platform, strings.TrimSpace(link.URL), link.IsActive, at); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't update social links", zap.Error(err))
		return err
	}
	return nil
}
