package models

import (
	"time"

	"gorm.io/gorm"
)

// DateRange holds a vacation's start/end dates. At most one row per vacation;
// the unique index on VacationID enforces it even when two creations race
// past the singleton gate.
type DateRange struct {
	gorm.Model

	Start      *time.Time
	End        *time.Time
	VacationID uint `gorm:"not null;uniqueIndex"`

	// Relationships
	Vacation Vacation `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
