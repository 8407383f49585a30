package model

import (
	"time"
)

// SiteSetting is one flat key/value row of site configuration.
// Key is "<category>.<name>" (e.g. "contact.email"); Category duplicates the
// prefix so the admin panel can query a whole group without string matching.
// Value holds the JSON-encoded setting; legacy rows may contain raw strings.
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Category  string    `gorm:"type:varchar(100);index;not null" json:"category"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for SiteSetting
func (SiteSetting) TableName() string {
	return "site_settings"
}
