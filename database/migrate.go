package database

import (
	"gorm.io/gorm"

	"workhive_backend/internal/models"
)

// Migrate brings the schema up to date for the postgres provider.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.JobPost{},
	)
}
