package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goshop/app/models"
	"goshop/app/repositories"
)

var (
	ErrCommentNotFound = errors.New("comment does not exist")
	ErrEmptyComment    = errors.New("comment content is empty")
)

// CommentService owns the moderation state machine. New comments start
// waiting; publish and cancel are terminal moderation actions; the
// public read path only ever sees published comments.
type CommentService struct {
	commentRepo repositories.CommentRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCommentService(commentRepo repositories.CommentRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CommentService {
	return &CommentService{commentRepo: commentRepo, productRepo: productRepo}
}

// Create adds a comment in waiting status. A reply always lands on its
// parent's product, whatever slug the request came in on.
func (s *CommentService) Create(ctx context.Context, userID, productSlug, content string, parentID *string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}

	product, err := s.productRepo.FindActiveBySlug(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %q: %w", productSlug, err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	productID := product.ID

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrCommentNotFound
		}
		productID = parent.ProductID
	}

	comment := &models.Comment{
		ProductID: productID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   content,
		Status:    models.CommentStatusWaiting,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Publish(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.CommentStatusPublished)
}

func (s *CommentService) Cancel(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, models.CommentStatusCanceled)
}

func (s *CommentService) setStatus(ctx context.Context, id, status string) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return s.commentRepo.UpdateStatus(ctx, id, status)
}

// AdminReply creates a moderator reply and publishes both the reply and
// its parent: answering a comment implicitly approves the thread.
func (s *CommentService) AdminReply(ctx context.Context, moderatorID, parentID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyComment
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrCommentNotFound
	}

	reply := &models.Comment{
		ProductID: parent.ProductID,
		UserID:    moderatorID,
		ParentID:  &parentID,
		Content:   content,
	}
	if err := s.commentRepo.CreateReplyAndPublishParent(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}
	return reply, nil
}

// PublishedForProduct is the storefront view: published comments only.
func (s *CommentService) PublishedForProduct(ctx context.Context, productID string) ([]models.Comment, error) {
	return s.commentRepo.PublishedByProductID(ctx, productID)
}

// AllForModeration lists top-level comments in every status with their
// replies preloaded, for the moderation screen.
func (s *CommentService) AllForModeration(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.TopLevelForModeration(ctx)
}
