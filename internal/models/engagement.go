package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleLike records one user liking one article. The composite unique
// index keeps concurrent toggles from inserting duplicate rows.
type ArticleLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ArticleID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_article_likes_article_user" json:"article_id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_article_likes_article_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ArticleLike) TableName() string {
	return "article_likes"
}

// ArticleBookmark records one user bookmarking one article. Row order is the
// order bookmarks were made in, which the bookmarked listing relies on.
type ArticleBookmark struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ArticleID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_article_bookmarks_article_user" json:"article_id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_article_bookmarks_article_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ArticleBookmark) TableName() string {
	return "article_bookmarks"
}
