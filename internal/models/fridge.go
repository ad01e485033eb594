package models

import (
	"time"

	"github.com/google/uuid"
)

// FridgeItem marks an ingredient as owned by a user. The composite unique
// index makes adding the same ingredient twice a no-op rather than a
// duplicate row.
type FridgeItem struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_fridge_items_user_ingredient" json:"user_id"`
	IngredientID uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex:idx_fridge_items_user_ingredient" json:"ingredient_id"`
	CreatedAt    time.Time  `json:"created_at"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

func (FridgeItem) TableName() string {
	return "fridge_items"
}
