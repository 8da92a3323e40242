package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lnbits/satspay/config"
	"github.com/lnbits/satspay/internal/adapter/feed"
	httpHandler "github.com/lnbits/satspay/internal/adapter/http/handler"
	"github.com/lnbits/satspay/internal/adapter/http/middleware"
	"github.com/lnbits/satspay/internal/adapter/invoices"
	pgStorage "github.com/lnbits/satspay/internal/adapter/storage/postgres"
	redisStorage "github.com/lnbits/satspay/internal/adapter/storage/redis"
	"github.com/lnbits/satspay/internal/adapter/wallet"
	"github.com/lnbits/satspay/internal/core/domain"
	"github.com/lnbits/satspay/internal/core/ports"
	"github.com/lnbits/satspay/internal/service"
	"github.com/lnbits/satspay/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting SatsPay charge server")

	ctx := context.Background()

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	log.Info().Msg("PostgreSQL connected")

	// Redis
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	chargeRepo := pgStorage.NewChargeRepo(pool)
	themeRepo := pgStorage.NewThemeRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	rateCache := redisStorage.NewRateCache(rdb)

	// Saved settings win over the config seed for the explorer endpoint.
	feedSettings := domain.DefaultSettings()
	feedSettings.MempoolURL = cfg.Mempool.URL
	feedSettings.Network = cfg.Mempool.Network
	if settings, err := settingsRepo.Get(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	} else if settings != nil {
		feedSettings = *settings
	}
	mempoolURL := feedSettings.Endpoint()

	httpClient := &http.Client{Timeout: 30 * time.Second}

	// Core services
	tracker := service.NewTracker(log)
	broadcaster := service.NewBroadcaster(log)
	// The webhook caller carries its own per-delivery deadline.
	webhooks := service.NewWebhookCaller(&http.Client{}, cfg.Webhook.Timeout, log)
	rates := service.NewRates(httpClient, rateCache, cfg.Rates.Endpoint, log)
	walletClient := wallet.NewClient(cfg.Wallet, httpClient, log)
	explorer := feed.NewExplorer(mempoolURL, httpClient)

	settlementSvc := service.NewSettlement(
		chargeRepo,
		settingsRepo,
		tracker,
		webhooks,
		broadcaster,
		explorer,
		walletClient,
		log,
	)
	chargeSvc := service.NewCharges(chargeRepo, settingsRepo, walletClient, rates, tracker, log)

	// Settlement events for the same charge must apply in order; unrelated
	// charges settle concurrently, so one slow webhook cannot stall the rest.
	addressDispatcher := service.NewDispatcher[domain.AddressTxs](settlementSvc.OnAddressTxs)
	invoiceDispatcher := service.NewDispatcher[invoices.Payment](func(ctx context.Context, p invoices.Payment) {
		settlementSvc.OnInvoicePaid(ctx, p.ChargeID, p.PaymentHash, p.AmountMsat)
	})

	mempoolFeed := feed.New(mempoolURL, tracker, func(ctx context.Context, batch domain.AddressTxs) {
		addressDispatcher.Dispatch(ctx, batch.Address, batch)
	}, logger.Component(log, "feed"))
	invoiceListener := invoices.NewListener(rdb, cfg.Redis.InvoiceChannel, func(ctx context.Context, p invoices.Payment) {
		invoiceDispatcher.Dispatch(ctx, p.ChargeID, p)
	}, logger.Component(log, "invoices"))

	bgCtx, stopBackground := context.WithCancel(ctx)
	go mempoolFeed.Run(bgCtx)
	go func() {
		if err := invoiceListener.Run(bgCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Invoice listener stopped")
		}
	}()

	// Re-derive balances missed while the process was down and re-arm
	// address tracking before accepting traffic.
	settlementSvc.ReconcilePending(ctx)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Keys: middleware.Keys{
			InvoiceKey: cfg.Wallet.APIKey,
			AdminKey:   cfg.Wallet.AdminKey,
		},
		Charges:  httpHandler.NewChargeHandler(chargeSvc, settlementSvc, log),
		Themes:   httpHandler.NewThemeHandler(themeRepo, log),
		Settings: httpHandler.NewSettingsHandler(settingsRepo, []httpHandler.Restarter{mempoolFeed, explorer}, log),
		WS:       httpHandler.NewWSHandler(chargeSvc, broadcaster, log),
		Health:   httpHandler.NewHealthHandler([]ports.HealthChecker{pgHealth, redisHealth}, log),
		Log:      log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	stopBackground()
	addressDispatcher.Wait()
	invoiceDispatcher.Wait()

	log.Info().Msg("Server exited")
}
