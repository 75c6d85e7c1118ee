package config

import (
	"log/slog"

	"github.com/blaisecz/health-risk/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	slog.Info("database connection established")
	return db, nil
}

// Migrate creates or updates the patient and measurement tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Patient{}, &domain.MetricRecord{}); err != nil {
		return err
	}
	slog.Info("database migration completed")
	return nil
}
