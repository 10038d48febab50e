package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Variant is one purchasable form of a product. The (product, color)
// pair is unique at the schema level.
type Variant struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_product_color"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`
	ColorID   string  `gorm:"size:36;not null;uniqueIndex:idx_product_color"`
	Color     Color   `gorm:"constraint:OnDelete:CASCADE"`
	Image     string  `gorm:"size:255;default:'alternative_image'"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock     int             `gorm:"not null;check:stock >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v *Variant) BeforeSave(tx *gorm.DB) error {
	if v.Image == "" {
		v.Image = PlaceholderImage
	}
	return nil
}
