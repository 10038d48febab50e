package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goshop/app/models"
	"goshop/app/repositories"
	"goshop/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func newProductTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	catalog := services.NewCatalogService(
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewCommentRepository(db),
	)
	handler := NewProductHandler(render.New(), catalog)

	router := mux.NewRouter()
	router.HandleFunc("/category/{slug}", handler.CategoryProducts).Methods("GET")
	router.HandleFunc("/{product_slug}", handler.ProductDetail).Methods("GET")
	return router, db
}

func TestCategoryProducts_UnknownSlugIs404(t *testing.T) {
	router, _ := newProductTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/category/no-such-category", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryProducts_InactiveCategoryIs404(t *testing.T) {
	router, db := newProductTestRouter(t)

	hidden := models.Category{ID: uuid.NewString(), Title: "Archive", Slug: "archive", IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	req := httptest.NewRequest(http.MethodGet, "/category/archive", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDetail_UnknownSlugIs404(t *testing.T) {
	router, _ := newProductTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-product", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDetail_InactiveProductIs404(t *testing.T) {
	router, db := newProductTestRouter(t)

	hidden := models.Product{ID: uuid.NewString(), Name: "Old Galaxy", Slug: "old-galaxy", IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	req := httptest.NewRequest(http.MethodGet, "/old-galaxy", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
