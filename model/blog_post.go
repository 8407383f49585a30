package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Blog post lifecycle states
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

// BlogPost represents an article on the marketing site blog
type BlogPost struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title"`
	Content    string         `gorm:"type:text" json:"content"` // HTML body
	Excerpt    string         `gorm:"type:text" json:"excerpt"` // plain text, derived from Content
	CoverImage string         `gorm:"type:varchar(512)" json:"cover_image"`
	Author     string         `gorm:"type:varchar(255)" json:"author"`
	Tags       datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Status     string         `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	PublishAt  *time.Time     `json:"publish_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for BlogPost
func (BlogPost) TableName() string {
	return "blog_posts"
}
