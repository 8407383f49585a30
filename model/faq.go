package model

import (
	"time"

	"gorm.io/gorm"
)

// FAQ represents a question/answer entry on the FAQ page
type FAQ struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Question    string         `gorm:"type:text;not null" json:"question"`
	Answer      string         `gorm:"type:text;not null" json:"answer"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"` // e.g. "riders", "drivers", "payments"
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for FAQ
func (FAQ) TableName() string {
	return "faqs"
}
