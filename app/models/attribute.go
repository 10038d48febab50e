package models

import "time"

// Attribute is a named product trait such as "Size" or "Material".
type Attribute struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:250;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductAttributeValue binds one attribute to one product with a
// concrete value. Unique per (product, attribute).
type ProductAttributeValue struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID   string    `gorm:"size:36;not null;uniqueIndex:idx_product_attribute"`
	Product     Product   `gorm:"constraint:OnDelete:CASCADE"`
	AttributeID string    `gorm:"size:36;not null;uniqueIndex:idx_product_attribute"`
	Attribute   Attribute `gorm:"constraint:OnDelete:CASCADE"`
	Value       string    `gorm:"size:50;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
