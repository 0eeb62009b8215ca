package main

import (
	"context"
	"fmt"
	"os"

	"github.com/uptraa/platform/internal/repository"
	"github.com/uptraa/platform/pkg/config"
	"github.com/uptraa/platform/pkg/database"
	"github.com/uptraa/platform/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat, logger.Service("migrate"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Require("DATABASE_URL"); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
