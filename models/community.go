package models

import "time"

type Community struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommunityMember is the membership edge between a user and a community.
// Queried set-wise (feed candidate sets, membership checks) rather than
// navigated as an object graph.
type CommunityMember struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:idx_member_pair" json:"user_id"`
	CommunityID uint      `gorm:"not null;uniqueIndex:idx_member_pair" json:"community_id"`
	CreatedAt   time.Time `json:"created_at"`

	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Community Community `gorm:"foreignKey:CommunityID" json:"-"`
}

func (CommunityMember) TableName() string { return "community_members" }
