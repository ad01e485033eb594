package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cookai/backend/internal/models"
)

// FridgeService manages each user's personal inventory of owned ingredients.
type FridgeService struct {
	db *gorm.DB
}

// NewFridgeService creates a new FridgeService instance
func NewFridgeService(db *gorm.DB) *FridgeService {
	return &FridgeService{db: db}
}

// Add marks the named ingredient as owned by the user, creating the catalog
// entry if the name is unseen. Adding the same name twice is a no-op.
func (s *FridgeService) Add(ctx context.Context, userID uuid.UUID, ingredientName string) (*models.FridgeItem, error) {
	var item models.FridgeItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredient, err := resolveIngredient(tx, ingredientName)
		if err != nil {
			return err
		}
		err = tx.Where("user_id = ? AND ingredient_id = ?", userID, ingredient.ID).First(&item).Error
		if err == nil {
			item.Ingredient = *ingredient
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		item = models.FridgeItem{UserID: userID, IngredientID: ingredient.ID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// A concurrent Add won the insert; surface that row.
			return tx.Where("user_id = ? AND ingredient_id = ?", userID, ingredient.ID).
				Preload("Ingredient").First(&item).Error
		}
		item.Ingredient = *ingredient
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove takes an ingredient out of the user's fridge. The catalog entry is
// untouched.
func (s *FridgeService) Remove(ctx context.Context, userID, ingredientID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", userID, ingredientID).
		Delete(&models.FridgeItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the ingredients in the user's fridge in the order they were
// added.
func (s *FridgeService) List(ctx context.Context, userID uuid.UUID) ([]models.FridgeItem, error) {
	var items []models.FridgeItem
	if err := s.db.WithContext(ctx).
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
