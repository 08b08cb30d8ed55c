package postgres

import (
	"fmt"

	"loadboard/internal/adapters/out/postgres/loadrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database at dsn and migrates the loads table.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema the repositories rely on.
func Migrate(db *gorm.DB) error {
	if err := loadrepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate loads table: %w", err)
	}
	return nil
}
