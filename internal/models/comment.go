package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	Body       string `gorm:"not null"`
	CreatedBy  uint   `gorm:"not null;index"`
	VacationID uint   `gorm:"not null;index"`

	// Relationships
	Author   User     `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Vacation Vacation `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
