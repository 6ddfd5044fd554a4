package models

import "time"

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction holds at most one row per (user, post); re-reacting with a
// different type overwrites the row in place.
type Reaction struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;index;uniqueIndex:idx_reaction_pair" json:"user_id"`
	PostID       uint      `gorm:"not null;uniqueIndex:idx_reaction_pair" json:"post_id"`
	ReactionType string    `gorm:"size:10;not null" json:"reaction_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
