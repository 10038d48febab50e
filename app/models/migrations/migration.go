package migrations

import (
	"goshop/app/models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.OtpCode{},
		&models.Category{},
		&models.Product{},
		&models.ProductTag{},
		&models.Color{},
		&models.Variant{},
		&models.Attribute{},
		&models.ProductAttributeValue{},
		&models.Comment{},
	)
}
