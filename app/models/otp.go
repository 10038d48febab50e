package models

import "time"

// OtpCode holds the single live one-time code for a phone number.
// A new request for the same phone overwrites the old code and
// refreshes created_at.
type OtpCode struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Phone     string `gorm:"size:11;not null;uniqueIndex"`
	Code      int    `gorm:"not null"`
	Attempts  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
