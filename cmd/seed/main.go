package main

import (
	"github.com/rs/zerolog/log"

	"glamourstudio/internal/config"
	"glamourstudio/internal/database"
	"glamourstudio/internal/pkg/logger"
	"glamourstudio/internal/repository"
)

// Force-reseeds the reference tables for local development. Startup
// seeding only fires when a table is empty, so this empties the reference
// tables first. Bookings and contact messages are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("clearing reference tables")
	for _, table := range []string{"services", "gallery", "testimonials"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("failed to clear table")
		}
	}

	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("reference data reseeded")
}
