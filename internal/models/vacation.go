package models

import "gorm.io/gorm"

type Vacation struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	Place       string
	Picture     string
	OwnerID     uint `gorm:"not null;index"`

	// Relationships
	Owner       User         `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Memberships []Membership `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	DateRange   *DateRange   `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Activities  []Activity   `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments    []Comment    `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
