package entities

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	VideoID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Content   string    `gorm:"type:varchar(240);not null"`
	CreatedAt time.Time
}
