package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"iq-home/quotes_backend/internal/app/config"
	"iq-home/quotes_backend/internal/app/feed"
	apphttp "iq-home/quotes_backend/internal/app/http"
	"iq-home/quotes_backend/internal/app/http/handlers"
	"iq-home/quotes_backend/internal/infra/cache"
	"iq-home/quotes_backend/internal/infra/db/postgres"
	"iq-home/quotes_backend/internal/infra/realtime"
	"iq-home/quotes_backend/internal/logger"
)

func Run() {
	cfg := config.MustLoad()

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	svc := feed.New(db, cache.NewSnapshot(rdb, cfg.SnapshotTTL), log)

	listener := realtime.New(rdb, cfg.EventsChannel, svc.Invalidate, log)
	listener.Start(ctx)

	h := handlers.New(svc, log)
	router := apphttp.NewRouter(cfg, h, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
