package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/config"
	"github.com/GlebRadaev/goinvest/internal/handlers"
	"github.com/GlebRadaev/goinvest/internal/maturity"
	"github.com/GlebRadaev/goinvest/internal/repo"
	"github.com/GlebRadaev/goinvest/internal/schema"
	"github.com/GlebRadaev/goinvest/internal/service"
	"github.com/GlebRadaev/goinvest/internal/storage"
	"github.com/GlebRadaev/goinvest/migrations"
	"github.com/GlebRadaev/goinvest/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	db     storage.Backend
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	worker *maturity.Service
	addr   string

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.start(ctx, config.New())
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	db, err := storage.Open(ctx, storage.Options{
		URL:        cfg.Database,
		SQLitePath: cfg.SQLitePath,
		Namespace:  cfg.DBSchema,
	})
	if err != nil {
		zap.L().Error("open storage failed: ", zap.Error(err))
		return fmt.Errorf("can't open storage: %w", err)
	}
	if err := schema.Bootstrap(ctx, db, migrations.Migrations); err != nil {
		db.Close()
		zap.L().Error("schema bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't bootstrap schema: %w", err)
	}

	a.cfg = cfg
	a.db = db
	a.repo = repo.New(db)
	a.srv = service.New(a.repo, db, cfg)
	a.api = handlers.New(a.srv, handlers.Options{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log.Logger.With().Str("component", "http").Logger(),
	})
	a.worker = maturity.New(a.repo.InvestmentRepo, a.srv.LedgerService, cfg.MaturityInterval, cfg.MaturityBatch, cfg.MaturityWorkers)

	if err := a.prepareData(ctx); err != nil {
		db.Close()
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		db.Close()
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startMaturityWorker(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// prepareData promotes the configured administrator and seeds the demo catalog when asked to.
func (a *Application) prepareData(ctx context.Context) error {
	if a.cfg.AdminEmail != "" {
		promoted, err := a.srv.UserService.PromoteAdmin(ctx, a.cfg.AdminEmail)
		if err != nil {
			return fmt.Errorf("can't promote admin: %w", err)
		}
		if !promoted {
			zap.L().Warn("admin email is not registered yet", zap.String("email", a.cfg.AdminEmail))
		}
	}
	if a.cfg.SeedCatalog {
		if _, err := a.srv.ProductService.SeedDefaults(ctx); err != nil {
			return fmt.Errorf("can't seed catalog: %w", err)
		}
	}
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", a.cfg.Address)
	if err != nil {
		return err
	}
	a.addr = ln.Addr().String()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.addr))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startMaturityWorker(ctx context.Context) {
	a.worker.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.worker.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.db != nil {
		a.db.Close()
	}
	return appErr
}
