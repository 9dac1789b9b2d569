package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/credvault/credvault-backend/config"
	"github.com/credvault/credvault-backend/internal/auth"
	"github.com/credvault/credvault-backend/internal/bootstrap"
	"github.com/credvault/credvault-backend/internal/database"
)

const serviceName = "credvault-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg)
	logger.Info("starting",
		slog.String("service", serviceName),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Environment),
	)

	bootstrap.SetGinMode(cfg.App.Environment)

	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("migrate", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect db", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var revocations *auth.RevocationList
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("connect redis", slog.Any("error", err))
			os.Exit(1)
		}
		revocations = auth.NewRevocationList(rdb)
		logger.Info("token revocation list enabled", slog.String("addr", cfg.Redis.Addr))
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		DB:          pool,
		Verifier:    auth.NewJWTVerifier(cfg.Auth.JWTSecret),
		Revocations: revocations,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
}
