package models

import (
	"time"
)

type Category struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title     string    `gorm:"size:250;not null"`
	Slug      string    `gorm:"size:250;not null;uniqueIndex"`
	ParentID  *string   `gorm:"size:36;index"`
	Parent    *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	IsActive  bool      `gorm:"index"`
	Products  []Product `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryNode is the minimal projection used to build the category
// adjacency map. Descendant traversal only needs id and parent_id.
type CategoryNode struct {
	ID       string
	ParentID *string
}
