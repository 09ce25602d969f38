package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/di"
	_ "frontdesk/docs"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

const otelFlushTimeout = 5 * time.Second

// @title Frontdesk API
// @version 1.0
// @description Hotel front desk: rooms, guests, bookings, the transaction ledger and statistics.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	app, cleanup, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	if err := app.Jobs.Register(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	app.Scheduler.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.HTTP.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with error")
	}

	if err := app.Scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Failed to stop scheduler")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), otelFlushTimeout)
	defer cancel()

	if err := app.Otel.Shutdown(flushCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
