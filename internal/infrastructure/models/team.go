package models

import (
	"time"
)

type Team struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(120);not null"`
	Color     string `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserTeam struct {
	UserID  uint `gorm:"primaryKey"`
	TeamID  uint `gorm:"primaryKey"`
	IsAdmin bool `gorm:"not null;default:false"`
}

func (UserTeam) TableName() string {
	return "user_teams"
}
