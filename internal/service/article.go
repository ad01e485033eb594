package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/types"
)

// TrendingWindowDays is the trailing window for the trending view.
const TrendingWindowDays = 3

// ArticleService handles article operations and the derived read views.
type ArticleService struct {
	db *gorm.DB
}

// NewArticleService creates a new ArticleService instance
func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// Create creates a new article owned by userID
func (s *ArticleService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateArticleRequest) (*models.Article, error) {
	article := models.Article{
		Title:    req.Title,
		Content:  req.Content,
		Recipe:   req.Recipe,
		ImageURL: req.ImageURL,
		UserID:   userID,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, NewValidationError("category_id", "invalid category id")
		}
		var category models.Category
		if err := s.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("category_id", "category does not exist")
			}
			return nil, err
		}
		article.CategoryID = &categoryID
	}
	if err := s.db.WithContext(ctx).Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Get retrieves an article by ID
func (s *ArticleService) Get(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := s.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Update applies a partial patch to an article. Author-only.
func (s *ArticleService) Update(ctx context.Context, id, userID uuid.UUID, req *types.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(userID, article.UserID) {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Recipe != nil {
		article.Recipe = *req.Recipe
	}
	if req.ImageURL != nil {
		article.ImageURL = req.ImageURL
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, NewValidationError("category_id", "invalid category id")
		}
		var category models.Category
		if err := s.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("category_id", "category does not exist")
			}
			return nil, err
		}
		article.CategoryID = &categoryID
	}

	if err := s.db.WithContext(ctx).Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// Delete removes an article together with its comments, recipe-ingredient
// links and engagement rows, all in one transaction. Referenced ingredients
// stay in the catalog. Author-only.
func (s *ArticleService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !CanMutate(userID, article.UserID) {
			return ErrNotOwner
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleBookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
}

// List returns all articles in ascending creation order, paginated.
func (s *ArticleService) List(ctx context.Context, page, limit int) ([]models.Article, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	var articles []models.Article
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Trending returns articles created within the trailing window, ordered by
// like count ascending then creation time. The ascending like order is the
// behavior the product shipped with and is kept as-is.
func (s *ArticleService) Trending(ctx context.Context, now time.Time) ([]models.Article, error) {
	cutoff := now.Add(-TrendingWindowDays * 24 * time.Hour)
	var articles []models.Article
	if err := s.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("articles.*, COUNT(article_likes.id) AS like_count").
		Joins("LEFT JOIN article_likes ON article_likes.article_id = articles.id").
		Where("articles.created_at >= ?", cutoff).
		Group("articles.id").
		Order("like_count ASC, articles.created_at ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Bookmarked returns the user's bookmarked articles in the order the
// bookmarks were made, ties broken by article creation time.
func (s *ArticleService) Bookmarked(ctx context.Context, userID uuid.UUID) ([]models.Article, error) {
	var articles []models.Article
	if err := s.db.WithContext(ctx).
		Model(&models.Article{}).
		Joins("JOIN article_bookmarks ON article_bookmarks.article_id = articles.id").
		Where("article_bookmarks.user_id = ?", userID).
		Order("article_bookmarks.id ASC, articles.created_at ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ByCategory returns a category's articles in ascending creation order.
func (s *ArticleService) ByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Article, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var articles []models.Article
	if err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
