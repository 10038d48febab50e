package repositories

import (
	"context"

	"goshop/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindActiveBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.Product, error)
	GetActiveProducts(ctx context.Context, limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("Variants.Color").
		Preload("AttributeValues.Attribute").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) FindActiveBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("Variants.Color").
		Preload("AttributeValues.Attribute").
		Preload("Tags").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// FindByCategoryIDs returns active products belonging to any of the given
// categories, with variant and attribute relations eager loaded so the
// listing page never does per-item lookups.
func (p *productRepository) FindByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Distinct("products.*").
		Joins("JOIN product_categories pc ON pc.product_id = products.id").
		Where("pc.category_id IN ? AND products.is_active = ?", categoryIDs, true).
		Preload("Categories").
		Preload("Variants.Color").
		Preload("AttributeValues.Attribute").
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetActiveProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	q := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Variants.Color").
		Preload("AttributeValues.Attribute").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&products).Error
	return products, err
}
