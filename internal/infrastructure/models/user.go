package models

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(64);not null;uniqueIndex"`
	Password  string `gorm:"type:varchar(255);not null"`
	Name      string `gorm:"type:varchar(120);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	AvatarURL string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
