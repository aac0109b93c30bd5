package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campus_backend/internal/config"
	"campus_backend/internal/models"
)

// ConnectGorm opens a GORM connection using the configured DSN and
// verifies it with a ping.
func ConnectGorm(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Event{},
		&models.EventRegistration{},
		&models.Notification{},
		&models.Student{},
		&models.PrAdmin{},
		&models.Announcement{},
		&models.StudentRegistration{},
	)
}
