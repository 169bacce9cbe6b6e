package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Video struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContributorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Contributor   Contributor
	StoragePath   string `gorm:"type:varchar(500);not null"`
	Duration      int    // saniye, yuvarlanmış
	IsVertical    bool
	HasNote       bool
	CreatedAt     time.Time
	// Küratörlük alanları, sadece admin panel günceller
	Selected   bool
	Favorite   bool
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OrderIndex *int
}
