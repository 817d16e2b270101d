package model

import (
	"time"
)

// Bookmark 用户对投稿的收藏，同一 (user, post) 组合最多一行。
type Bookmark struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_post" json:"userId"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_user_post;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`

	Post Post `gorm:"foreignKey:PostID;references:ID"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
