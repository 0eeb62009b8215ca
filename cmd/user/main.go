package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/api"
	"github.com/uptraa/platform/internal/api/handlers"
	mw "github.com/uptraa/platform/internal/api/middleware"
	"github.com/uptraa/platform/internal/auth"
	"github.com/uptraa/platform/internal/media"
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
// @description  User service: profiles, media and skills.
// @BasePath     /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat, logger.Service("user"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Require("DATABASE_URL", "JWT_SECRET", "PACKAGES_SERVICE_URL"); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting user service", zap.String("env", cfg.AppEnv), zap.String("addr", cfg.HTTPAddr))

	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	users := repository.NewUserRepository(db)
	svc := services.NewUserService(users, repository.NewSkillRepository(db), media.NewRelay(cfg.PackagesServiceURL, nil))
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn, cfg.ResetTokenExpiresIn)

	router := api.NewUserRouter(api.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustProxy:     cfg.TrustProxy,
		Ready:          func(ctx context.Context) error { return database.Ping(ctx, db) },
	}, handlers.NewUserHandler(svc), mw.Auth(tokens, users))

	if err := api.Serve(ctx, cfg.HTTPAddr, router, cfg.ShutdownTimeout); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
