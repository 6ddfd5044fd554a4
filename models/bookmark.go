package models

import "time"

// Bookmark is a save marker independent of reactions.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_bookmark_pair" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_bookmark_pair" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
