package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/api"
	"github.com/uptraa/platform/internal/api/handlers"
	"github.com/uptraa/platform/internal/auth"
	"github.com/uptraa/platform/internal/cache"
	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/queue"
	"github.com/uptraa/platform/internal/repository"
	"github.com/uptraa/platform/internal/services"
	"github.com/uptraa/platform/pkg/config"
	"github.com/uptraa/platform/pkg/database"
	"github.com/uptraa/platform/pkg/logger"

	// Registers the API document served under /docs.
	_ "github.com/uptraa/platform/docs"
)

// @title        Uptraa API
// @version      1.0
// @description  Auth service: registration, login and password reset.
// @BasePath     /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat, logger.Service("auth"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Require("DATABASE_URL", "REDIS_ADDR", "JWT_SECRET", "PACKAGES_SERVICE_URL", "FRONTEND_URL"); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting auth service", zap.String("env", cfg.AppEnv), zap.String("addr", cfg.HTTPAddr))

	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	rdb, err := database.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// The service still serves logins while the mail queue is down; reset
	// emails are dropped (and logged) until the producer connects.
	producer := queue.NewProducer(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := producer.Connect(ctx); err != nil {
		log.Error("mail queue producer not connected", zap.Error(err))
	}
	defer producer.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn, cfg.ResetTokenExpiresIn)
	svc := services.NewAuthService(
		repository.NewUserRepository(db),
		tokens,
		cache.NewResetTokenStore(rdb),
		producer,
		media.NewRelay(cfg.PackagesServiceURL, nil),
		cfg.FrontendURL,
	)

	router := api.NewAuthRouter(api.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustProxy:     cfg.TrustProxy,
		Ready: func(ctx context.Context) error {
			if err := database.Ping(ctx, db); err != nil {
				return err
			}
			return rdb.Ping(ctx).Err()
		},
	}, handlers.NewAuthHandler(svc))

	if err := api.Serve(ctx, cfg.HTTPAddr, router, cfg.ShutdownTimeout); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
