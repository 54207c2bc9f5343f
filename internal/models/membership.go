package models

import "gorm.io/gorm"

// Membership links a user to a vacation they participate in. The composite
// unique index backs the application-level duplicate gate so concurrent
// invites cannot slip a second row in between check and insert.
type Membership struct {
	gorm.Model

	UserID     uint `gorm:"not null;uniqueIndex:idx_user_vacation"`
	VacationID uint `gorm:"not null;uniqueIndex:idx_user_vacation"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Vacation Vacation `gorm:"foreignKey:VacationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
