package model

import (
	"time"

	"gorm.io/gorm"
)

// Reel represents an embedded Instagram reel shown on the home page
type Reel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	URL          string         `gorm:"type:varchar(512);not null" json:"url"`
	Caption      string         `gorm:"type:text" json:"caption"`
	ThumbnailURL string         `gorm:"type:varchar(512)" json:"thumbnail_url"`
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`
	IsPublished  bool           `gorm:"default:true" json:"is_published"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Reel
func (Reel) TableName() string {
	return "reels"
}
