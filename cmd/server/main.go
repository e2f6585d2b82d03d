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

	"go.uber.org/zap"

	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/di"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/internal/server"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/config"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/database"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/logger"
	"github.com/CRLTS-SNOW/ECO-ENERGY-EV1-BACKEND-INACAPLS/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  cfg.Log.OutputPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbCfg := database.DefaultPostgresConfig()
	dbCfg.Host = cfg.Database.Host
	dbCfg.Port = cfg.Database.Port
	dbCfg.User = cfg.Database.User
	dbCfg.Password = cfg.Database.Password
	dbCfg.Database = cfg.Database.DBName
	dbCfg.SSLMode = cfg.Database.SSLMode
	dbCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	dbCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	dbCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	dbCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to postgres", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DBName))

	// Redis backs distributed rate limiting; the service runs without it
	var redisClient *redis.Client
	redisClient, err = redis.NewClient(ctx, &redis.Config{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Warn("redis unavailable, falling back to local rate limiting", zap.Error(err))
		redisClient = nil
	} else {
		defer func() { _ = redisClient.Close() }()
	}

	container := di.NewContainer(&di.ContainerConfig{
		DB:    db,
		Redis: redisClient,
	})
	defer container.Close()

	router := server.NewRouter(cfg, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
