package model

import (
	"time"

	"gorm.io/gorm"
)

// MediaFile is a registry entry for an externally hosted asset.
// The site does not handle binary uploads; files live on a CDN/object store
// and this table only tracks their metadata for the admin media library.
type MediaFile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UUID      string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	URL       string         `gorm:"type:varchar(512);not null" json:"url"`
	MimeType  string         `gorm:"type:varchar(100)" json:"mime_type"`
	SizeBytes int64          `gorm:"default:0" json:"size_bytes"`
	AltText   string         `gorm:"type:varchar(512)" json:"alt_text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for MediaFile
func (MediaFile) TableName() string {
	return "media_files"
}
