package models

import "time"

// RevokedToken blocks a logged-out token until its natural expiry.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	JTI       string    `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}
