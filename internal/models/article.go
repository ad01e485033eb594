package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is a published recipe post. Comments, recipe ingredients and
// engagement rows belong to it and are removed when it is deleted.
type Article struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Title      string     `gorm:"size:30;not null" json:"title"`
	Content    string     `gorm:"size:500" json:"content"`
	Recipe     string     `gorm:"size:500" json:"recipe"`
	ImageURL   *string    `gorm:"size:255" json:"image_url"`
	UserID     uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CategoryID *uuid.UUID `gorm:"type:varchar(36);index" json:"category_id"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID   uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name string    `gorm:"size:10;not null" json:"name"`
	Info string    `gorm:"size:50" json:"info"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
