package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(50);not null"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password  *string `gorm:"type:varchar(255)"`
	Bio       *string `gorm:"type:varchar(500)"`
	Avatar    *string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
