package repositories

import (
	"fmt"
	"testing"

	"goshop/app/models"
	"goshop/app/models/migrations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database per test. cache=shared
// keeps every pooled connection on the same database and the DSN flag
// turns foreign key enforcement on, so cascade behavior matches the
// production schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, phone string) models.User {
	t.Helper()
	user := models.User{ID: uuid.NewString(), Phone: phone, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, title, slug string, parentID *string) models.Category {
	t.Helper()
	category := models.Category{
		ID:       uuid.NewString(),
		Title:    title,
		Slug:     slug,
		ParentID: parentID,
		IsActive: true,
	}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name, slug string, categories ...models.Category) models.Product {
	t.Helper()
	product := models.Product{
		ID:         uuid.NewString(),
		Name:       name,
		Slug:       slug,
		IsActive:   true,
		Categories: categories,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
