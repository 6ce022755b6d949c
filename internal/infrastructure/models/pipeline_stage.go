package models

import (
	"time"
)

type PipelineStage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(120);not null"`
	SortOrder int    `gorm:"not null;index"`
	Color     string `gorm:"type:varchar(20)"`
	Kind      string `gorm:"type:varchar(10);not null;default:'open'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
