package models

import "time"

// Comment moderation statuses, stored as single-character codes.
const (
	CommentStatusWaiting   = "w"
	CommentStatusPublished = "p"
	CommentStatusCanceled  = "c"
)

type Comment struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string   `gorm:"size:36;not null;index"`
	Product   Product  `gorm:"constraint:OnDelete:CASCADE"`
	UserID    string   `gorm:"size:36;not null;index"`
	User      User     `gorm:"constraint:OnDelete:CASCADE"`
	ParentID  *string  `gorm:"size:36;index"`
	Parent    *Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Replies   []Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"size:1;not null;default:'w';index"`
	CreatedAt time.Time `gorm:"index"`
}
