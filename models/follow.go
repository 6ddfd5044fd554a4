package models

import "time"

// Follow is a directed edge: follower follows following. The composite
// unique index is the final authority against duplicate edges.
type Follow struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerUserID  uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"follower_user_id"`
	FollowingUserID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_user_id"`
	CreatedAt       time.Time `json:"created_at"`

	FollowerUser  User `gorm:"foreignKey:FollowerUserID" json:"-"`
	FollowingUser User `gorm:"foreignKey:FollowingUserID" json:"-"`
}
