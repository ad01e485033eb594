package database

import (
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
)

// AutoMigrate creates or updates the schema for every domain entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Ingredient{},
		&models.IngredientLink{},
		&models.RecipeIngredient{},
		&models.Comment{},
		&models.ArticleLike{},
		&models.ArticleBookmark{},
		&models.FridgeItem{},
	)
}
