package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mhdasif123/SipandSnack/internal/app"
	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/config"
	"github.com/mhdasif123/SipandSnack/internal/notify"
	"github.com/mhdasif123/SipandSnack/internal/seed"
	"github.com/mhdasif123/SipandSnack/internal/storage/memory"
	transporthttp "github.com/mhdasif123/SipandSnack/internal/transport/http"
	"github.com/mhdasif123/SipandSnack/internal/window"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	clk := clock.NewSystem()
	store := memory.NewStore()
	if cfg.SeedDemoData {
		if err := seed.Demo(context.Background(), store, clk); err != nil {
			logger.Fatal("seed demo data", zap.Error(err))
		}
		logger.Info("seeded demo roster, catalogs, and orders")
	}

	policy := window.NewPolicy(cfg.OrderWindowStartHour, cfg.OrderWindowEndMinute)
	notifier := notify.NewLogNotifier(logger)
	orderSvc := app.NewOrderService(store, clk, policy, notifier, logger, app.WithAmountCap(cfg.OrderAmountCap))
	reportSvc := app.NewReportService(store, clk)
	rosterSvc := app.NewRosterService(store)
	catalogSvc := app.NewCatalogService(store)

	handler := transporthttp.NewRouter(transporthttp.Deps{
		Orders:  orderSvc,
		Reports: reportSvc,
		Roster:  rosterSvc,
		Catalog: catalogSvc,
		Window:  policy,
		Clock:   clk,
		Login: transporthttp.Credentials{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
		Logger:      logger,
		CORSOrigins: cfg.Origins(),
	})

	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	go window.NewWatcher(policy, clk, time.Minute, logger).Run(watcherCtx)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", zap.String("port", cfg.Port))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
