package database

import (
	"fmt"
	"log/slog"

	"gamerank/internal/config"
	"gamerank/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the postgres connection and applies the schema. The
// unique indexes and cascade constraints declared on the models are what
// enforce the at-most-one invariants under concurrent writers, so
// migration failures are fatal.
func ConnectDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		// surface duplicate unique keys as gorm.ErrDuplicatedKey so the
		// services can treat conflicting writes as no-ops
		TranslateError: true,
	}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connected to the database successfully")
	return db, nil
}

func runMigrations(db *gorm.DB, log *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Rating{},
		&models.Comment{},
		&models.CommentVote{},
		&models.Follow{},
		&models.UserSettings{},
		&models.RefreshToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}
