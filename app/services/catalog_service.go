package services

import (
	"context"
	"errors"
	"fmt"

	"goshop/app/models"
	"goshop/app/repositories"
)

var ErrNotFound = errors.New("not found")

// CatalogService answers the storefront read queries: category listing
// pages (category plus all its descendants) and product detail pages.
type CatalogService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	commentRepo  repositories.CommentRepositoryImpl
}

func NewCatalogService(categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, commentRepo repositories.CommentRepositoryImpl) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		commentRepo:  commentRepo,
	}
}

// ListProductsForCategory returns the active category for the slug and
// every active product tagged with it or any of its descendants. The
// snapshot of active categories is re-read on every call, so a category
// write is visible to the next request.
func (s *CatalogService) ListProductsForCategory(ctx context.Context, slug string) (*models.Category, []models.Product, error) {
	category, err := s.categoryRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up category %q: %w", slug, err)
	}
	if category == nil {
		return nil, nil, ErrNotFound
	}

	nodes, err := s.categoryRepo.ActiveNodes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load category snapshot: %w", err)
	}

	ids := []string{category.ID}
	for id := range DescendantIDs(category.ID, nodes) {
		ids = append(ids, id)
	}

	products, err := s.productRepo.FindByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load products for category %q: %w", slug, err)
	}
	return category, products, nil
}

// GetProductDetail returns the active product with its variants,
// attribute values and published comments.
func (s *CatalogService) GetProductDetail(ctx context.Context, productSlug string) (*models.Product, []models.Comment, error) {
	product, err := s.productRepo.FindActiveBySlug(ctx, productSlug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up product %q: %w", productSlug, err)
	}
	if product == nil {
		return nil, nil, ErrNotFound
	}

	comments, err := s.commentRepo.PublishedByProductID(ctx, product.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load comments for product %q: %w", productSlug, err)
	}
	return product, comments, nil
}

// Home returns the active products for the landing page.
func (s *CatalogService) Home(ctx context.Context, limit int) ([]models.Product, error) {
	return s.productRepo.GetActiveProducts(ctx, limit)
}
