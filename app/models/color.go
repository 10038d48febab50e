package models

import "time"

type Color struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:250;not null"`
	Code      string `gorm:"size:7;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
