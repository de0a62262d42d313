package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/blackos-labs/agency-backoffice/internal/api/router"
	"github.com/blackos-labs/agency-backoffice/internal/auth"
	"github.com/blackos-labs/agency-backoffice/internal/cache"
	appconfig "github.com/blackos-labs/agency-backoffice/internal/config"
	"github.com/blackos-labs/agency-backoffice/internal/http/handlers"
	"github.com/blackos-labs/agency-backoffice/internal/leads"
	"github.com/blackos-labs/agency-backoffice/internal/meetings"
	"github.com/blackos-labs/agency-backoffice/internal/notify"
	"github.com/blackos-labs/agency-backoffice/internal/observability/metrics"
	"github.com/blackos-labs/agency-backoffice/internal/store"
	"github.com/blackos-labs/agency-backoffice/internal/webui"
	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

func main() {
	// Load .env in development; a missing file is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agency back office",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.SessionSecret == "" {
		logger.Error("SESSION_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// database/sql view of the same pool for the reporting queries.
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() { _ = sqlDB.Close() }()

	leadsRepo := leads.NewPostgresRepository(pool)
	meetingsRepo := meetings.NewPostgresRepository(pool)
	authRepo := auth.NewPostgresRepository(pool)

	leadsHandler := leads.NewHandler(leadsRepo, logger)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, leads cache disabled", "error", err)
		} else {
			leadsHandler = leadsHandler.WithCache(cache.NewLeadsCache(redisClient, cfg.LeadsCacheTTL, logger))
		}
	}
	if cfg.SendGridAPIKey != "" && cfg.NotifyEmail != "" {
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		leadsHandler = leadsHandler.WithNotifier(notify.NewService(sender, cfg.NotifyEmail, logger))
	}

	meetingsHandler := meetings.NewHandler(meetingsRepo, logger)
	authHandler := auth.NewHandler(authRepo, cfg.SessionSecret, cfg.SessionTTL, logger)
	dashboardHandler := handlers.NewDashboardHandler(sqlDB, logger)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	routerCfg := &router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		MeetingsHandler:    meetingsHandler,
		AuthHandler:        authHandler,
		Dashboard:          dashboardHandler,
		Pages:              webui.NewHandler(),
		SessionSecret:      cfg.SessionSecret,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		HTTPMetrics:        httpMetrics,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		APIRatePerSecond:   cfg.APIRatePerSecond,
		APIRateBurst:       cfg.APIRateBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
