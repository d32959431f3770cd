package models

import "time"

type Item struct {
	ID uint `gorm:"primarykey"`

	Title       string `gorm:"not null"`
	Description string
	OwnerID     uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
