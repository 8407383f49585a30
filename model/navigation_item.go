package model

import (
	"time"

	"gorm.io/gorm"
)

// Navigation locations
const (
	NavLocationHeader = "header"
	NavLocationFooter = "footer"
)

// NavigationItem represents one link in the site header or footer
type NavigationItem struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Label      string         `gorm:"type:varchar(100);not null" json:"label"`
	Href       string         `gorm:"type:varchar(512);not null" json:"href"`
	Location   string         `gorm:"type:varchar(20);default:'header';index" json:"location"`
	SortOrder  int            `gorm:"default:0;index" json:"sort_order"`
	IsExternal bool           `gorm:"default:false" json:"is_external"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for NavigationItem
func (NavigationItem) TableName() string {
	return "navigation_items"
}
