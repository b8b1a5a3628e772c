package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/app"
)

//	@title			GoInvest API
//	@version		1.0
//	@description	Investment platform API Server

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:5000
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		log.Error().Err(err).Msg("goinvest stopped with error")
		zap.L().Error("goinvest stopped with error", zap.Error(err))
		stop()
		os.Exit(1)
	}
	zap.L().Info("goinvest stopped")
}

// run blocks until a signal arrives or a component fails, then waits for everything to shut down.
func run(ctx context.Context, stop context.CancelFunc) error {
	a := app.New()
	if err := a.Start(ctx); err != nil {
		return err
	}
	return a.Wait(ctx, stop)
}
