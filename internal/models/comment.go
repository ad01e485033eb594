package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ArticleID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"article_id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Body      string    `gorm:"size:300;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
