package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-manager/config"
	_ "todo-manager/docs" // Swagger docs
	"todo-manager/internal/httpserver"
	"todo-manager/internal/todo/repository"
	kvRepo "todo-manager/internal/todo/repository/kv"
	"todo-manager/internal/todo/usecase"
	"todo-manager/pkg/kvstore"
	"todo-manager/pkg/log"
)

// @title       Todo Manager API
// @description Task list with add, save, delete, clear-all and title filtering.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage: an unavailable store switches the app to ephemeral mode
	var repo repository.Repository
	store, err := kvstore.Open(ctx, kvstore.Config{
		Driver:      cfg.Storage.Driver,
		PingTimeout: cfg.Storage.PingTimeout,
		Redis: kvstore.RedisConfig{
			Addr:      cfg.Storage.Redis.Addr,
			Password:  cfg.Storage.Redis.Password,
			DB:        cfg.Storage.Redis.DB,
			KeyPrefix: cfg.Storage.Redis.KeyPrefix,
		},
		Postgres: kvstore.PostgresConfig{
			DSN:   cfg.Storage.Postgres.DSN,
			Table: cfg.Storage.Postgres.Table,
		},
	})
	if err != nil {
		logger.Warnf(ctx, "Storage is not available, TODOs will not persist: %v", err)
	} else {
		defer store.Close()
		repo = kvRepo.New(store, logger)
		logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)
	}

	// 4. Todo domain
	todoUC := usecase.New(logger, usecase.Config{
		Repo:            repo,
		Users:           cfg.Todo.Users,
		NotificationTTL: cfg.Todo.NotificationTTL,
	})
	if err := todoUC.Restore(ctx); err != nil {
		logger.Warnf(ctx, "Failed to restore todos: %v", err)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimit:       cfg.RateLimit,
		TodoUseCase:     todoUC,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
