package entities

import (
	"time"

	"github.com/google/uuid"
)

type Contributor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Relation  string    `gorm:"type:varchar(255)"`
	SessionID string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time
	UserAgent string `gorm:"type:varchar(500)"`
}
