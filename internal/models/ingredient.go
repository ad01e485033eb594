package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is the canonical registry entry for one ingredient name.
// Rows are created lazily the first time a name is referenced; the unique
// index on Name is what makes concurrent creation safe to retry as a lookup.
type Ingredient struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Info      string    `gorm:"size:100" json:"info"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// IngredientLink is a purchase or reference link attached to an ingredient.
type IngredientLink struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	IngredientID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"ingredient_id"`
	URL          string    `gorm:"size:255" json:"url"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (IngredientLink) TableName() string {
	return "ingredient_links"
}

// RecipeIngredient links one article to one ingredient with a quantity and
// unit. The same ingredient may appear more than once per article; no
// uniqueness is enforced on (article_id, ingredient_id).
type RecipeIngredient struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	ArticleID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"article_id"`
	IngredientID uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"ingredient_id"`
	Quantity     int        `gorm:"not null" json:"quantity"`
	Unit         string     `gorm:"size:100;not null" json:"unit"`
	CreatedAt    time.Time  `json:"created_at"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
