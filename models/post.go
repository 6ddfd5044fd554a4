package models

import "time"

const (
	PostTypeProfile   = "profile"
	PostTypeCommunity = "community"
)

type Post struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	AuthorID    uint       `gorm:"not null;index" json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"-"`
	CommunityID *uint      `gorm:"index" json:"community_id"`
	Community   *Community `gorm:"foreignKey:CommunityID" json:"-"`
	PostType    string     `gorm:"size:20;not null" json:"post_type"` // "profile" or "community", consistent with CommunityID
	Images      []Image    `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
