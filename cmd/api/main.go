package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/identity-hub/identity-api/internal/api"
	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/service"
	"github.com/identity-hub/identity-api/internal/infrastructure/config"
	mongostore "github.com/identity-hub/identity-api/internal/infrastructure/db/mongo"
	redisstore "github.com/identity-hub/identity-api/internal/infrastructure/db/redis"
	"github.com/identity-hub/identity-api/internal/infrastructure/queue"
	"github.com/identity-hub/identity-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "identity-api",
	})

	log.Info().
		Str("version", domain.APIVersion).
		Int("max_users", domain.MaxUsers).
		Str("env", cfg.Env).
		Msg("starting identity api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongostore.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	auditRepo := mongostore.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, userRepo, dispatcher, auditService, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("http server listening")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
}
