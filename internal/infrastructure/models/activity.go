package models

import (
	"time"
)

type Activity struct {
	ID            uint    `gorm:"primaryKey"`
	Type          string  `gorm:"type:varchar(20);not null"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Description   *string `gorm:"type:text"`
	UserID        uint    `gorm:"not null;index"`
	RelatedToType *string `gorm:"type:varchar(20)"`
	RelatedToID   *uint
	Metadata      string `gorm:"type:jsonb;default:'{}'"`
	CreatedAt     time.Time
}
