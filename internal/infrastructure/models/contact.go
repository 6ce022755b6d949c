package models

import (
	"time"
)

type Contact struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(120);not null"`
	Email      string  `gorm:"type:varchar(255);not null"`
	Phone      *string `gorm:"type:varchar(50)"`
	Title      *string `gorm:"type:varchar(120)"`
	Company    *string `gorm:"type:varchar(120)"`
	Source     string  `gorm:"type:varchar(50);not null;default:'other'"`
	Status     string  `gorm:"type:varchar(20);not null;default:'lead'"`
	AssignedTo *uint   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
