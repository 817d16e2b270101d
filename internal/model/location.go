package model

import "time"

// Location 投稿共享的地点。Latitude 和 Longitude 要么同时有值，
// 要么同时为空。
type Location struct {
	ID         uint64   `gorm:"primaryKey"`
	Name       string   `gorm:"type:varchar(255);not null;index:idx_location_name"`
	Country    string   `gorm:"type:varchar(100);not null"`
	Prefecture *string  `gorm:"type:varchar(100)"`
	Latitude   *float64 `gorm:"type:double"`
	Longitude  *float64 `gorm:"type:double"`
	CreatedAt  time.Time
}

func (Location) TableName() string {
	return "locations"
}
