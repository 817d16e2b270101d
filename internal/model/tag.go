package model

import "time"

type Tag struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name"`
	Slug      string `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_slug"`
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}
