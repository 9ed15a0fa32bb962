package database

import (
	"gorm.io/gorm"

	"github.com/musclematch/backend/internal/models"
)

// Migrate brings the schema up to date. The membership core is three tables;
// GORM auto-migration covers both Postgres and the sqlite test databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.EvidencePhoto{},
	)
}
