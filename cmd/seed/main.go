package main

import (
	"context"

	"shopmart-backend/internal/config"
	"shopmart-backend/internal/db"
	"shopmart-backend/internal/logging"
	"shopmart-backend/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, cfg, logger); err != nil {
		logger.WithError(err).Fatal("seed apply")
	}

	logger.Info("seed applied")
}
