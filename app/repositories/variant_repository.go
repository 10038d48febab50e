package repositories

import (
	"context"

	"goshop/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VariantRepositoryImpl interface {
	Create(ctx context.Context, variant *models.Variant) error
	GetByProductID(ctx context.Context, productID string) ([]models.Variant, error)
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db}
}

// Create relies on the (product_id, color_id) unique index to reject a
// second variant for the same pair.
func (r *variantRepository) Create(ctx context.Context, variant *models.Variant) error {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *variantRepository) GetByProductID(ctx context.Context, productID string) ([]models.Variant, error) {
	var variants []models.Variant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Preload("Color").
		Find(&variants).Error
	return variants, err
}
