package models

import "time"

type User struct {
	ID uint `gorm:"primarykey"`

	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	FullName       string
	IsActive       bool `gorm:"not null;default:true"`
	IsSuperuser    bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Items  []Item  `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tokens []Token `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
