package database

import (
	"gorm.io/gorm"

	"github.com/resepku/backend/internal/model"
)

// RunMigrations brings the schema up to date
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
	)
}
