package models

import "time"

// Token records an issued access token. Validation is stateless (signature and
// expiry checks on the string itself); the row exists so tokens are removed
// together with their user.
type Token struct {
	ID uint `gorm:"primarykey"`

	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UserID    uint      `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
