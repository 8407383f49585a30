package model

import (
	"time"

	"gorm.io/gorm"
)

// Achievement represents a stat shown on the home page (e.g. "1M+ rides")
type Achievement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Label     string         `gorm:"type:varchar(255);not null" json:"label"`
	Value     string         `gorm:"type:varchar(100);not null" json:"value"`
	Icon      string         `gorm:"type:varchar(100)" json:"icon"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Achievement
func (Achievement) TableName() string {
	return "achievements"
}
