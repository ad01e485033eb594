package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
)

// CommentService handles article comments.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a new CommentService instance
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create adds a comment to an article
func (s *CommentService) Create(ctx context.Context, articleID, userID uuid.UUID, body string) (*models.Comment, error) {
	if err := articleExists(s.db.WithContext(ctx), articleID); err != nil {
		return nil, err
	}
	comment := models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Body:      body,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByArticle returns an article's comments in creation order
func (s *CommentService) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]models.Comment, error) {
	if err := articleExists(s.db.WithContext(ctx), articleID); err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update replaces a comment's body. Author-only.
func (s *CommentService) Update(ctx context.Context, commentID uint, userID uuid.UUID, body string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CanMutate(userID, comment.UserID) {
		return nil, ErrNotOwner
	}
	comment.Body = body
	if err := s.db.WithContext(ctx).Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment. Author-only.
func (s *CommentService) Delete(ctx context.Context, commentID uint, userID uuid.UUID) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !CanMutate(userID, comment.UserID) {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&comment).Error
}
