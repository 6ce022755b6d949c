package models

import (
	"time"
)

type Task struct {
	ID            uint    `gorm:"primaryKey"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Description   *string `gorm:"type:text"`
	DueDate       *time.Time
	Time          *string `gorm:"type:varchar(50)"`
	Completed     bool    `gorm:"not null;default:false"`
	Priority      string  `gorm:"type:varchar(10);not null;default:'medium'"`
	AssignedTo    uint    `gorm:"not null;index"`
	RelatedToType *string `gorm:"type:varchar(20)"`
	RelatedToID   *uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
