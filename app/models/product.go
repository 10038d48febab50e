package models

import (
	"time"

	"gorm.io/gorm"
)

const PlaceholderImage = "alternative_image"

type Product struct {
	ID              string     `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name            string     `gorm:"size:250;not null"`
	Slug            string     `gorm:"size:250;not null;uniqueIndex"`
	Description     string     `gorm:"type:text"`
	CoverImage      string     `gorm:"size:255;default:'alternative_image'"`
	Brand           string     `gorm:"size:100"`
	IsActive        bool       `gorm:"index"`
	Categories      []Category `gorm:"many2many:product_categories;constraint:OnDelete:CASCADE"`
	Variants        []Variant
	AttributeValues []ProductAttributeValue
	Tags            []ProductTag
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProductCategory struct {
	ProductID  string `gorm:"size:36;primaryKey"`
	CategoryID string `gorm:"size:36;primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductTag is a free-form label attached to a product.
type ProductTag struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;not null;uniqueIndex:idx_product_tag"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`
	Name      string  `gorm:"size:100;not null;uniqueIndex:idx_product_tag"`
	CreatedAt time.Time
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.CoverImage == "" {
		p.CoverImage = PlaceholderImage
	}
	return nil
}
