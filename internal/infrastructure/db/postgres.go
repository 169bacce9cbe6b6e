package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"video-guestbook/internal/pkg/config"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return database, nil
}
