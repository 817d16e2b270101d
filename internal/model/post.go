package model

import (
	"time"
)

type Post struct {
	ID         uint64  `gorm:"primaryKey"`
	AuthorID   uint64  `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title      string  `gorm:"type:varchar(255);not null" json:"title"`
	Content    string  `gorm:"not null" json:"content"`
	ImageURL   string  `gorm:"type:varchar(512);not null" json:"image_url"`
	IsPublic   bool    `gorm:"type:tinyint(1);not null;default:1" json:"is_public"`
	LocationID *uint64 `gorm:"index:idx_location_id" json:"location_id"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Author   User      `gorm:"foreignKey:AuthorID;references:ID"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID"`
	Tags     []Tag     `gorm:"many2many:post_tags"`
}

func (Post) TableName() string {
	return "posts"
}
