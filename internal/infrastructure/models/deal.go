package models

import (
	"time"
)

type Deal struct {
	ID                uint    `gorm:"primaryKey"`
	Name              string  `gorm:"type:varchar(255);not null"`
	Description       *string `gorm:"type:text"`
	Value             float64 `gorm:"type:decimal(12,2);not null;default:0"`
	StageID           uint    `gorm:"not null;index"`
	ContactID         uint    `gorm:"not null;index"`
	OwnerID           uint    `gorm:"not null;index"`
	ExpectedCloseDate *time.Time
	Probability       int `gorm:"not null;default:50"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}
