package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cookai/backend/internal/models"
)

// IngredientService is the catalog of canonical ingredient names.
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// Resolve looks an ingredient up by exact name, creating it with empty info
// when absent. Two concurrent calls for an unseen name race on the unique
// name index; the loser's duplicate-key failure is retried as a lookup and
// never surfaces to the caller.
func (s *IngredientService) Resolve(ctx context.Context, name string) (*models.Ingredient, error) {
	return resolveIngredient(s.db.WithContext(ctx), name)
}

// resolveIngredient is the transaction-local form of Resolve, so components
// that resolve as part of a larger write can share the caller's tx.
func resolveIngredient(tx *gorm.DB, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := tx.Where("name = ?", name).First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// DO NOTHING keeps a lost insert race from aborting the caller's
	// transaction on postgres; the winner's row is fetched instead.
	ingredient = models.Ingredient{Name: name}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ingredient)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing models.Ingredient
		if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return &ingredient, nil
}

// Get retrieves an ingredient by ID
func (s *IngredientService) Get(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// UpdateInfo replaces an ingredient's free-text info
func (s *IngredientService) UpdateInfo(ctx context.Context, id uuid.UUID, info string) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ingredient.Info = info
	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes an ingredient and everything referencing it: recipe links,
// purchase links and fridge rows. Deletion is always explicit; removing a
// recipe link never deletes the shared ingredient.
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient
		if err := tx.First(&ingredient, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.IngredientLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.FridgeItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
}

// AddLink attaches a purchase/reference link to an ingredient
func (s *IngredientService) AddLink(ctx context.Context, ingredientID uuid.UUID, url, imageURL string) (*models.IngredientLink, error) {
	if _, err := s.Get(ctx, ingredientID); err != nil {
		return nil, err
	}
	link := models.IngredientLink{
		IngredientID: ingredientID,
		URL:          url,
		ImageURL:     imageURL,
	}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks returns an ingredient's links in creation order
func (s *IngredientService) ListLinks(ctx context.Context, ingredientID uuid.UUID) ([]models.IngredientLink, error) {
	var links []models.IngredientLink
	if err := s.db.WithContext(ctx).
		Where("ingredient_id = ?", ingredientID).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
