package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"signup-service/internal/accounts"
	"signup-service/internal/config"
	"signup-service/internal/metrics"
	"signup-service/migrations"
	"signup-service/pkg/db"
	"signup-service/pkg/kafka"
	rredis "signup-service/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("signup-service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Config + logger ──
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// ── 2. PostgreSQL ──
	database, err := db.Connect(ctx, cfg.DatabaseURL, cfg.ConnectAttempts, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.RunMigrations(ctx, migrations.FS); err != nil {
		return err
	}

	var store accounts.Store = accounts.NewPostgresStore(database.Pool)

	// ── 3. Redis email cache (optional) ──
	if cfg.RedisAddr != "" {
		redisClient, err := rredis.NewClient(ctx, cfg.RedisAddr, cfg.ConnectAttempts, logger)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		store = accounts.NewCachedStore(store, redisClient, logger)
	}

	// ── 4. Metrics ──
	opts := []accounts.Option{accounts.WithMetrics(metrics.New(prometheus.DefaultRegisterer))}

	// ── 5. Kafka account events (optional) ──
	if len(cfg.KafkaBrokers) > 0 {
		kafkaClient := kafka.NewClient(cfg.KafkaBrokers, logger)
		if err := kafkaClient.EnsureTopics(ctx, kafka.TopicAccountCreated); err != nil {
			return err
		}
		defer kafkaClient.Close()
		opts = append(opts, accounts.WithPublisher(kafkaClient))
	}

	// ── 6. Services ──
	accountSvc := accounts.NewService(store, logger, opts...)

	// ── 7. HTTP router ──
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"signup-service"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	accounts.NewHandler(accountSvc).Register(r)

	// ── 8. Start server ──
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	errc := make(chan error, 1)
	go func() {
		logger.Info("signup-service listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// ── 9. Graceful shutdown ──
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
