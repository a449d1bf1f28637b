package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/planforge/planforge-be/internal/auth"
	"github.com/planforge/planforge-be/internal/config"
	"github.com/planforge/planforge-be/internal/database"
	"github.com/planforge/planforge-be/internal/logger"
	"github.com/planforge/planforge-be/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to initialize database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	procedure := seed.New(seed.NewSQLStore(db), auth.NewHasher())
	outcome, err := procedure.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	if outcome.Seeded {
		log.Info().
			Int("users", outcome.UsersCreated).
			Int("projects", outcome.ProjectsCreated).
			Msg("Seed run complete")
	} else {
		log.Info().
			Int("existing_users", outcome.ExistingUsers).
			Msg("Seed run skipped")
	}
}
