package model

import (
	"time"
)

// ContactSubmission stores a contact form entry. Each submission is also
// forwarded to the configured relay endpoint; RelayedAt stays nil when the
// relay failed (the submission itself still succeeds).
type ContactSubmission struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Reference string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Email     string     `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	RelayedAt *time.Time `json:"relayed_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName specifies the table name for ContactSubmission
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
