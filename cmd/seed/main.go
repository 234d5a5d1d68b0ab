package main

import (
	"context"
	"os"

	"hugely/internal/cache"
	"hugely/internal/config"
	"hugely/internal/db"
	"hugely/internal/logger"
	"hugely/internal/repository"
	"hugely/internal/service"
)

// seed creates the administrator account, or resets its password when it
// already exists. Credentials come from SEED_ADMIN_NAME and SEED_ADMIN_PASSWORD.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	log.Info().Msg("starting seed script")

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}
	log.Info().Msg("database migrations completed")

	if cfg.SeedAdminPassword == "" {
		log.Error().Msg("SEED_ADMIN_PASSWORD is not set")
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	users := service.NewUserService(repository.NewUserRepository(gormDB), cacheClient)
	created, err := users.EnsureAdmin(context.Background(), cfg.SeedAdminName, cfg.SeedAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Str("name", cfg.SeedAdminName).Msg("seed administrator")
	}

	if created {
		log.Info().Str("name", cfg.SeedAdminName).Msg("administrator created")
	} else {
		log.Info().Str("name", cfg.SeedAdminName).Msg("administrator password reset")
	}
}
