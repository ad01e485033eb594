package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/types"
)

// RecipeService handles the article/ingredient composition: which
// ingredients an article's recipe uses, in what quantity and unit.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// AddIngredient resolves the named ingredient against the catalog and links
// it to the article. Resolving and linking happen in one transaction so a
// resolved ingredient without its link is never observable. Author-only.
// The same ingredient may be added to an article more than once.
func (s *RecipeService) AddIngredient(ctx context.Context, articleID, userID uuid.UUID, req *types.AddRecipeIngredientRequest) (*models.RecipeIngredient, error) {
	var link models.RecipeIngredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !CanMutate(userID, article.UserID) {
			return ErrNotOwner
		}
		ingredient, err := resolveIngredient(tx, req.IngredientName)
		if err != nil {
			return err
		}
		link = models.RecipeIngredient{
			ArticleID:    articleID,
			IngredientID: ingredient.ID,
			Quantity:     req.Quantity,
			Unit:         req.Unit,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		link.Ingredient = *ingredient
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListIngredients returns an article's recipe-ingredient links in the order
// they were added.
func (s *RecipeService) ListIngredients(ctx context.Context, articleID uuid.UUID) ([]models.RecipeIngredient, error) {
	var article models.Article
	if err := s.db.WithContext(ctx).First(&article, "id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var links []models.RecipeIngredient
	if err := s.db.WithContext(ctx).
		Preload("Ingredient").
		Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// UpdateIngredient partially updates a recipe-ingredient link. A new
// ingredient name is re-resolved against the catalog. Only the owning
// article's author may update.
func (s *RecipeService) UpdateIngredient(ctx context.Context, linkID uint, userID uuid.UUID, req *types.UpdateRecipeIngredientRequest) (*models.RecipeIngredient, error) {
	var link models.RecipeIngredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&link, "id = ?", linkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var article models.Article
		if err := tx.First(&article, "id = ?", link.ArticleID).Error; err != nil {
			return err
		}
		if !CanMutate(userID, article.UserID) {
			return ErrNotOwner
		}
		if req.IngredientName != nil {
			ingredient, err := resolveIngredient(tx, *req.IngredientName)
			if err != nil {
				return err
			}
			link.IngredientID = ingredient.ID
		}
		if req.Quantity != nil {
			link.Quantity = *req.Quantity
		}
		if req.Unit != nil {
			link.Unit = *req.Unit
		}
		if err := tx.Save(&link).Error; err != nil {
			return err
		}
		return tx.Preload("Ingredient").First(&link, "id = ?", link.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// RemoveIngredient deletes the association row only; the shared ingredient
// stays in the catalog even when nothing references it anymore. Only the
// owning article's author may remove.
func (s *RecipeService) RemoveIngredient(ctx context.Context, linkID uint, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.RecipeIngredient
		if err := tx.First(&link, "id = ?", linkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var article models.Article
		if err := tx.First(&article, "id = ?", link.ArticleID).Error; err != nil {
			return err
		}
		if !CanMutate(userID, article.UserID) {
			return ErrNotOwner
		}
		return tx.Delete(&link).Error
	})
}
