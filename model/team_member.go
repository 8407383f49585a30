package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeamMember represents a person shown on the about/team page
type TeamMember struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Role      string         `gorm:"type:varchar(255)" json:"role"`
	Bio       string         `gorm:"type:text" json:"bio"`
	PhotoURL  string         `gorm:"type:varchar(512)" json:"photo_url"`
	Socials   datatypes.JSON `gorm:"type:jsonb" json:"socials"` // e.g. {"linkedin": "...", "twitter": "..."}
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
