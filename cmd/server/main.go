package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/pattarin/banchi/internal/adapter/chat"
	httpAdapter "github.com/pattarin/banchi/internal/adapter/http"
	"github.com/pattarin/banchi/internal/adapter/http/handler"
	"github.com/pattarin/banchi/internal/adapter/http/middleware"
	memoryRepo "github.com/pattarin/banchi/internal/adapter/repository/memory"
	postgresRepo "github.com/pattarin/banchi/internal/adapter/repository/postgres"
	redisRepo "github.com/pattarin/banchi/internal/adapter/repository/redis"
	"github.com/pattarin/banchi/internal/domain"
	"github.com/pattarin/banchi/internal/infrastructure/clock"
	"github.com/pattarin/banchi/internal/infrastructure/config"
	"github.com/pattarin/banchi/internal/infrastructure/logger"
	"github.com/pattarin/banchi/internal/infrastructure/metrics"
	"github.com/pattarin/banchi/internal/infrastructure/postgres"
	"github.com/pattarin/banchi/internal/infrastructure/redis"
	"github.com/pattarin/banchi/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "banchi",
	})
	log.Logger = appLogger

	if err := domain.ValidateCutoffDay(cfg.CutoffDay); err != nil {
		log.Fatal().Err(err).Msg("invalid cutoff day")
	}

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Pending-reset store: in-process by default, redis when instances
	// share one bot.
	var (
		pendingStore usecase.PendingResetStore
		redisClient  *redislib.Client
	)
	switch cfg.PendingStore {
	case "memory":
		pendingStore = memoryRepo.NewPendingResetStore()
	case "redis":
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		pendingStore = redisRepo.NewPendingResetStore(redisClient)
	default:
		log.Fatal().Str("pending_store", cfg.PendingStore).Msg("unknown pending store")
	}

	m := metrics.New()
	localClock := clock.NewFixedOffset(cfg.UTCOffsetHours)
	retrier := postgresRepo.NewRetrier(appLogger)

	entryRepo := postgresRepo.NewEntryRepository(pool, retrier)
	resetRepo := postgresRepo.NewResetMarkerRepository(pool, retrier)
	idGen := postgresRepo.NewULIDGenerator()

	ledgerUC := usecase.NewLedgerUseCase(entryRepo, resetRepo, idGen, localClock, cfg.CutoffDay, m)
	resetUC := usecase.NewResetUseCase(pendingStore, resetRepo, idGen, localClock, cfg.CutoffDay, cfg.ConfirmWindow, m)

	dispatcher := chat.NewDispatcher(ledgerUC, resetUC, appLogger, m)

	rateLimiter := middleware.NewRateLimiter(cfg.WebhookRateLimit, cfg.WebhookRateBurst)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WebhookHandler: handler.NewWebhookHandler(dispatcher),
		SummaryHandler: handler.NewSummaryHandler(ledgerUC),
		HealthHandler:  handler.NewHealthHandler(pool, redisClient),
		RateLimiter:    rateLimiter,
		Logger:         appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().
			Str("port", cfg.HTTPPort).
			Int("cutoff_day", cfg.CutoffDay).
			Dur("confirm_window", cfg.ConfirmWindow).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Drop idle per-client limiters once an hour.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rateLimiter.CleanupLimiters()
			case <-cleanupDone:
				return
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	close(cleanupDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
