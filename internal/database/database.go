package database

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"glamourstudio/internal/repository"
)

// Connect opens the database for the given DSN. A postgres:// DSN selects
// PostgreSQL; anything else is treated as a SQLite file path (pure-Go
// driver, no cgo).
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}

	log.Info().Str("path", dsn).Msg("using SQLite database")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Init brings the schema up to date and seeds the reference tables. It
// must succeed before the server starts accepting requests.
func Init(db *gorm.DB) error {
	if err := repository.AutoMigrate(db); err != nil {
		return err
	}
	return Seed(db)
}
