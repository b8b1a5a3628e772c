// Package maturity settles investments whose term has ended. A ticker wakes the worker, which
// pays out every matured investment through the ledger on a bounded pool of goroutines.
package maturity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/metrics"
	"github.com/GlebRadaev/goinvest/internal/service/ledgerservice"
)

//go:generate mockgen -source=maturity.go -destination=mock_maturity.go -package=maturity

type Repo interface {
	FindMatured(ctx context.Context, now time.Time, limit int) ([]domain.Investment, error)
}

type Settler interface {
	Settle(ctx context.Context, inv domain.Investment) error
}

type Service struct {
	repo       Repo
	settler    Settler
	limit      int
	workerPool WorkerPoolI
	interval   time.Duration
	inFlight   sync.Map
	now        func() time.Time
	done       chan struct{}
}

func New(repo Repo, settler Settler, interval time.Duration, limit, workers int) *Service {
	return &Service{
		repo:       repo,
		settler:    settler,
		limit:      limit,
		workerPool: NewWorkerPool(workers),
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start launches the ticker loop. A non-positive interval disables the worker.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("Maturity worker disabled")
		close(s.done)
		return
	}
	zap.L().Info("Maturity worker started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

// Done is closed once the worker has stopped and its pool has drained.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping maturity worker")
			return
		case <-ticker.C:
			if _, err := s.ProcessMatured(ctx); err != nil {
				zap.L().Error("Maturity run failed", zap.Error(err))
			}
		}
	}
}

// ProcessMatured settles one batch of matured investments and returns how many were paid out.
// Investments already being settled by an earlier run are skipped.
func (s *Service) ProcessMatured(ctx context.Context) (int, error) {
	investments, err := s.repo.FindMatured(ctx, s.now().UTC().Truncate(time.Second), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch matured investments", zap.Error(err))
		return 0, err
	}

	var (
		g       errgroup.Group
		wg      sync.WaitGroup
		settled atomic.Int64
	)
	for _, inv := range investments {
		if _, loaded := s.inFlight.LoadOrStore(inv.ID, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer s.inFlight.Delete(inv.ID)
				if err := s.settle(ctx, inv); err != nil {
					return err
				}
				settled.Add(1)
				return nil
			})
			if err != nil {
				wg.Done()
				s.inFlight.Delete(inv.ID)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	wg.Wait()
	if err != nil {
		zap.L().Error("Error dispatching settlements", zap.Error(err))
	}
	return int(settled.Load()), err
}

func (s *Service) settle(ctx context.Context, inv domain.Investment) error {
	err := s.settler.Settle(ctx, inv)
	switch {
	case err == nil:
		metrics.MaturityRuns.WithLabelValues("settled").Inc()
		zap.L().Info("Investment settled", zap.Int64("investment_id", inv.ID), zap.Int64("user_id", inv.UserID))
		return nil
	case errors.Is(err, ledgerservice.ErrAlreadySettled):
		metrics.MaturityRuns.WithLabelValues("skipped").Inc()
		return nil
	default:
		metrics.MaturityRuns.WithLabelValues("error").Inc()
		return err
	}
}
