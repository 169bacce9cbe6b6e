package db

import (
	"gorm.io/gorm"

	"video-guestbook/internal/domain/entities"
)

// AutoMigrate is the dev-time shortcut; deployments run the goose
// migrations instead.
func AutoMigrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&entities.Contributor{},
		&entities.Video{},
		&entities.Note{},
	)
}
