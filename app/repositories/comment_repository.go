package repositories

import (
	"context"

	"goshop/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepositoryImpl interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	CreateReplyAndPublishParent(ctx context.Context, reply *models.Comment) error
	PublishedByProductID(ctx context.Context, productID string) ([]models.Comment, error)
	TopLevelForModeration(ctx context.Context) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepositoryImpl {
	return &commentRepository{db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.Status == "" {
		comment.Status = models.CommentStatusWaiting
	}
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CreateReplyAndPublishParent writes the reply and flips both the reply
// and its parent to published in one transaction. Replying from
// moderation implicitly approves the parent thread.
func (r *commentRepository) CreateReplyAndPublishParent(ctx context.Context, reply *models.Comment) error {
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}
	reply.Status = models.CommentStatusPublished
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", *reply.ParentID).
			Update("status", models.CommentStatusPublished).Error
	})
}

// PublishedByProductID is the public read path: published comments only,
// newest first.
func (r *commentRepository) PublishedByProductID(ctx context.Context, productID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, models.CommentStatusPublished).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// TopLevelForModeration lists top-level comments in every status with
// their replies, for the moderation screen only.
func (r *commentRepository) TopLevelForModeration(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Preload("Replies").
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
