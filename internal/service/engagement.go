package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cookai/backend/internal/models"
)

// EngagementService handles the like and bookmark relations between users
// and articles. Counts are never cached; they are relation sizes at read time.
type EngagementService struct {
	db *gorm.DB
}

// NewEngagementService creates a new EngagementService instance
func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleLike adds the user to the article's like set if absent, removes them
// if present, and reports the resulting membership.
func (s *EngagementService) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	liked := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := articleExists(tx, articleID); err != nil {
			return err
		}
		var like models.ArticleLike
		err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&like).Error
		if err == nil {
			return tx.Delete(&like).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// DO NOTHING so a concurrent toggle winning the insert cannot
		// abort the transaction; membership stands either way.
		like = models.ArticleLike{ArticleID: articleID, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// ToggleBookmark has the same toggle semantics as ToggleLike over the
// bookmark relation.
func (s *EngagementService) ToggleBookmark(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	bookmarked := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := articleExists(tx, articleID); err != nil {
			return err
		}
		var bookmark models.ArticleBookmark
		err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&bookmark).Error
		if err == nil {
			return tx.Delete(&bookmark).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		bookmark = models.ArticleBookmark{ArticleID: articleID, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark).Error; err != nil {
			return err
		}
		bookmarked = true
		return nil
	})
	return bookmarked, err
}

// Counts returns the current like and bookmark counts for an article.
func (s *EngagementService) Counts(ctx context.Context, articleID uuid.UUID) (likes int64, bookmarks int64, err error) {
	if err = s.db.WithContext(ctx).
		Model(&models.ArticleLike{}).
		Where("article_id = ?", articleID).
		Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.WithContext(ctx).
		Model(&models.ArticleBookmark{}).
		Where("article_id = ?", articleID).
		Count(&bookmarks).Error; err != nil {
		return 0, 0, err
	}
	return likes, bookmarks, nil
}

func articleExists(tx *gorm.DB, articleID uuid.UUID) error {
	var article models.Article
	if err := tx.First(&article, "id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
