package main

import (
	"context"

	"carameche/internal/config"
	"carameche/internal/db"
	"carameche/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := config.NewLogger(cfg)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	logger.Info().Msg("migrations applied")
}
