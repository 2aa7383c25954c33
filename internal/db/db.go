package db

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jmorales/aguaruta-visits/internal/config"
)

// Open connects to the SQLite data file and brings the schema up to date.
// Failure here means the native driver could not be loaded or the file is
// unusable; the caller falls back to the in-memory store.
func Open(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", cfg.DB.Path, err)
	}

	if err := runMigrations(database); err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.DB.Path).Msg("sqlite store ready")
	return database, nil
}
