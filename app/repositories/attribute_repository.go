package repositories

import (
	"context"

	"goshop/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	CreateAttribute(ctx context.Context, attribute *models.Attribute) error
	CreateValue(ctx context.Context, value *models.ProductAttributeValue) error
	GetValuesByProductID(ctx context.Context, productID string) ([]models.ProductAttributeValue, error)
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db}
}

func (r *attributeRepository) CreateAttribute(ctx context.Context, attribute *models.Attribute) error {
	if attribute.ID == "" {
		attribute.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(attribute).Error
}

func (r *attributeRepository) CreateValue(ctx context.Context, value *models.ProductAttributeValue) error {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(value).Error
}

func (r *attributeRepository) GetValuesByProductID(ctx context.Context, productID string) ([]models.ProductAttributeValue, error) {
	var values []models.ProductAttributeValue
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Preload("Attribute").
		Find(&values).Error
	return values, err
}
