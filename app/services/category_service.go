package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goshop/app/helpers"
	"goshop/app/models"
	"goshop/app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrCategoryCycle    = errors.New("category parent chain contains a cycle")
	ErrDepthExceeded    = errors.New("category path exceeds the maximum depth")
	ErrDuplicateSlug    = errors.New("another category already owns this slug")
	ErrParentNotFound   = errors.New("parent category does not exist")
	ErrCategoryNotFound = errors.New("category does not exist")
)

const DefaultCategoryMaxDepth = 4

type CategoryForm struct {
	ID       string
	Title    string `validate:"required,max=250"`
	ParentID *string
	IsActive bool
}

// CategoryService is the single write path for categories. Every save
// walks the parent chain, derives the slug from the full root-to-node
// path and rejects cycles, over-deep paths and slug collisions before
// anything is persisted.
type CategoryService struct {
	repo      repositories.CategoryRepositoryImpl
	validator *validator.Validate
	maxDepth  int
}

func NewCategoryService(repo repositories.CategoryRepositoryImpl, v *validator.Validate, maxDepth int) *CategoryService {
	if maxDepth <= 0 {
		maxDepth = DefaultCategoryMaxDepth
	}
	return &CategoryService{repo: repo, validator: v, maxDepth: maxDepth}
}

func (s *CategoryService) Save(ctx context.Context, form CategoryForm) (*models.Category, error) {
	if err := s.validator.StructCtx(ctx, form); err != nil {
		return nil, err
	}

	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := indexCategories(categories)

	id := form.ID
	if id == "" {
		id = uuid.New().String()
	}

	titles, err := pathTitles(id, form.Title, form.ParentID, byID)
	if err != nil {
		return nil, err
	}
	if len(titles) > s.maxDepth {
		return nil, ErrDepthExceeded
	}

	slug := slugFromTitles(titles)
	for i := range categories {
		if categories[i].Slug == slug && categories[i].ID != id {
			return nil, ErrDuplicateSlug
		}
	}

	category := &models.Category{
		ID:       id,
		Title:    form.Title,
		Slug:     slug,
		ParentID: form.ParentID,
		IsActive: form.IsActive,
	}
	if existing, ok := byID[id]; ok {
		category.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category %q: %w", slug, err)
	}
	return category, nil
}

// FullPath returns the lower-cased titles along the root-to-node path,
// the same sequence the slug is derived from.
func (s *CategoryService) FullPath(ctx context.Context, category *models.Category) ([]string, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return pathTitles(category.ID, category.Title, category.ParentID, indexCategories(categories))
}

// DisplayPath renders the full path for humans, e.g. "mobile -> samsung".
func (s *CategoryService) DisplayPath(ctx context.Context, category *models.Category) (string, error) {
	titles, err := s.FullPath(ctx, category)
	if err != nil {
		return "", err
	}
	return strings.Join(titles, " -> "), nil
}

// Delete removes the category. Subcategories and product associations go
// with it through the cascading foreign keys.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.repo.Delete(ctx, id)
}

func indexCategories(categories []models.Category) map[string]*models.Category {
	byID := make(map[string]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	return byID
}

// pathTitles walks from the node up to the root over the id-indexed map
// and returns the lower-cased titles in root-to-node order. A parent id
// seen twice on the way up is a cycle.
func pathTitles(id, title string, parentID *string, byID map[string]*models.Category) ([]string, error) {
	titles := []string{strings.ToLower(title)}
	visited := map[string]bool{id: true}

	for cur := parentID; cur != nil; {
		if visited[*cur] {
			return nil, ErrCategoryCycle
		}
		visited[*cur] = true

		parent, ok := byID[*cur]
		if !ok {
			return nil, ErrParentNotFound
		}
		titles = append(titles, strings.ToLower(parent.Title))
		cur = parent.ParentID
	}

	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return titles, nil
}

func slugFromTitles(titles []string) string {
	parts := make([]string, 0, len(titles))
	for _, t := range titles {
		parts = append(parts, helpers.GenerateSlug(t))
	}
	return strings.Join(parts, "-")
}
