package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uptraa/platform/internal/api"
	"github.com/uptraa/platform/internal/api/handlers"
	"github.com/uptraa/platform/internal/mail"
	"github.com/uptraa/platform/internal/media"
	"github.com/uptraa/platform/internal/queue"
	"github.com/uptraa/platform/internal/queue/tasks"
	"github.com/uptraa/platform/pkg/config"
	"github.com/uptraa/platform/pkg/logger"

	// Registers the API document served under /docs.
	_ "github.com/uptraa/platform/docs"
)

// @title        Uptraa API
// @version      1.0
// @description  Packages service: media uploads relayed by the other services.
// @BasePath     /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat, logger.Service("packages"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Require("REDIS_ADDR", "CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET", "SMTP_HOST", "MAIL_FROM"); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting packages service", zap.String("env", cfg.AppEnv), zap.String("addr", cfg.HTTPAddr))

	store, err := media.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal("failed to configure cloudinary", zap.Error(err))
	}

	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
	consumer := queue.NewConsumer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword},
		tasks.NewSendMailHandler(sender),
		cfg.AsynqConcurrency,
	)

	router := api.NewPackagesRouter(api.Options{}, handlers.NewUploadHandler(store))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Serve(gctx, cfg.HTTPAddr, router, cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		err := consumer.Run(gctx)
		if errors.Is(err, queue.ErrGaveUp) {
			// Uploads keep working without the mail consumer.
			log.Error("mail consumer stopped for this process lifetime", zap.Error(err))
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("packages service stopped with error", zap.Error(err))
	}
}
