package seeders

import (
	"context"
	"fmt"
	"math/rand"

	"goshop/app/db/fakers"
	"goshop/app/models"
	"goshop/app/repositories"
	"goshop/app/services"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DBSeed builds a small demo catalog: a category tree, a color palette,
// a few attributes and a dozen products spread over the leaf categories.
// Categories go through CategoryService so the seeded tree honors the
// same slug and depth rules as admin writes.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	categoryRepo := repositories.NewCategoryRepository(db)
	categorySvc := services.NewCategoryService(categoryRepo, validator.New(), 0)

	digital, err := categorySvc.Save(ctx, services.CategoryForm{Title: "Digital", IsActive: true})
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	mobile, err := categorySvc.Save(ctx, services.CategoryForm{Title: "Mobile", ParentID: &digital.ID, IsActive: true})
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	leaves := make([]models.Category, 0, 3)
	for _, title := range []string{"Samsung", "Xiaomi"} {
		leaf, err := categorySvc.Save(ctx, services.CategoryForm{Title: title, ParentID: &mobile.ID, IsActive: true})
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		leaves = append(leaves, *leaf)
	}
	appliances, err := categorySvc.Save(ctx, services.CategoryForm{Title: "Home Appliances", IsActive: true})
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	leaves = append(leaves, *appliances)

	colors := fakers.ColorFakers()
	if err := db.WithContext(ctx).Create(&colors).Error; err != nil {
		return fmt.Errorf("failed to seed colors: %w", err)
	}

	attributes := fakers.AttributeFakers()
	if err := db.WithContext(ctx).Create(&attributes).Error; err != nil {
		return fmt.Errorf("failed to seed attributes: %w", err)
	}

	for i := 0; i < 12; i++ {
		product := fakers.ProductFaker(leaves[rand.Intn(len(leaves))], colors, attributes)
		if err := db.WithContext(ctx).Create(product).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}

	return nil
}
