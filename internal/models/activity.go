package models

import "gorm.io/gorm"

type Activity struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	VacationID  uint `gorm:"not null;index"`

	// Relationships
	Vacation Vacation `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
