package models

import "time"

// User is identified by phone number, not by username or email.
type User struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Phone       string `gorm:"size:11;not null;uniqueIndex"`
	Username    string `gorm:"size:50"`
	Password    string `gorm:"size:255"`
	IsActive    bool   `gorm:"default:true"`
	IsStaff     bool   `gorm:"default:false"`
	IsSuperuser bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
