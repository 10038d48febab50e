package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"goshop/app/models"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type mockCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]models.Category
	saveErr    error
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]models.Category)}
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *models.Category) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = *category
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := m.GetBySlug(ctx, slug)
	if err != nil || c == nil || !c.IsActive {
		return nil, err
	}
	return c, nil
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepo) GetAllActive(ctx context.Context) ([]models.Category, error) {
	all, _ := m.GetAll(ctx)
	out := all[:0]
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepo) ActiveNodes(ctx context.Context) ([]models.CategoryNode, error) {
	active, _ := m.GetAllActive(ctx)
	nodes := make([]models.CategoryNode, 0, len(active))
	for _, c := range active {
		nodes = append(nodes, models.CategoryNode{ID: c.ID, ParentID: c.ParentID})
	}
	return nodes, nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

type mockProductRepo struct {
	products []models.Product
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := m.GetBySlug(ctx, slug)
	if err != nil || p == nil || !p.IsActive {
		return nil, err
	}
	return p, nil
}

func (m *mockProductRepo) FindByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.Product, error) {
	wanted := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}
	var out []models.Product
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		for _, c := range p.Categories {
			if wanted[c.ID] {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *mockProductRepo) GetActiveProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockCommentRepo struct {
	comments map[string]models.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]models.Comment)}
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.Status == "" {
		comment.Status = models.CommentStatusWaiting
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	m.comments[comment.ID] = *comment
	return nil
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if c, ok := m.comments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *mockCommentRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	c := m.comments[id]
	c.Status = status
	m.comments[id] = c
	return nil
}

func (m *mockCommentRepo) CreateReplyAndPublishParent(ctx context.Context, reply *models.Comment) error {
	reply.Status = models.CommentStatusPublished
	if err := m.Create(ctx, reply); err != nil {
		return err
	}
	return m.UpdateStatus(ctx, *reply.ParentID, models.CommentStatusPublished)
}

func (m *mockCommentRepo) PublishedByProductID(ctx context.Context, productID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.ProductID == productID && c.Status == models.CommentStatusPublished {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockCommentRepo) TopLevelForModeration(ctx context.Context) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.ParentID == nil {
			c := c
			for _, r := range m.comments {
				if r.ParentID != nil && *r.ParentID == c.ID {
					c.Replies = append(c.Replies, r)
				}
			}
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type mockUserRepo struct {
	users map[string]models.User // keyed by phone
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]models.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	m.users[user.Phone] = *user
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	if u, ok := m.users[phone]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetOrCreateByPhone(ctx context.Context, phone string) (*models.User, bool, error) {
	if u, ok := m.users[phone]; ok {
		return &u, false, nil
	}
	u := models.User{ID: uuid.New().String(), Phone: phone, IsActive: true}
	m.users[phone] = u
	return &u, true, nil
}

type mockOtpRepo struct {
	codes map[string]models.OtpCode
}

func newMockOtpRepo() *mockOtpRepo {
	return &mockOtpRepo{codes: make(map[string]models.OtpCode)}
}

func (m *mockOtpRepo) Upsert(ctx context.Context, phone string, code int) error {
	m.codes[phone] = models.OtpCode{
		ID:        uuid.New().String(),
		Phone:     phone,
		Code:      code,
		Attempts:  0,
		CreatedAt: time.Now(),
	}
	return nil
}

func (m *mockOtpRepo) FindByPhone(ctx context.Context, phone string) (*models.OtpCode, error) {
	if c, ok := m.codes[phone]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *mockOtpRepo) IncrementAttempts(ctx context.Context, phone string) error {
	c := m.codes[phone]
	c.Attempts++
	m.codes[phone] = c
	return nil
}

func (m *mockOtpRepo) DeleteByPhone(ctx context.Context, phone string) error {
	delete(m.codes, phone)
	return nil
}

type mockSMSSender struct {
	messages []string
	phones   []string
}

func (m *mockSMSSender) Send(ctx context.Context, phone, message string) error {
	m.phones = append(m.phones, phone)
	m.messages = append(m.messages, message)
	return nil
}
