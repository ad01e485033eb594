package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/testhelpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testhelpers.SetupSQLite(t)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestArticle(t *testing.T, db *gorm.DB, userID uuid.UUID, title string) *models.Article {
	t.Helper()
	article := models.Article{
		Title:   title,
		Content: "content for " + title,
		Recipe:  "recipe for " + title,
		UserID:  userID,
	}
	if err := db.Create(&article).Error; err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return &article
}

func createTestArticleAt(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, createdAt time.Time) *models.Article {
	t.Helper()
	article := createTestArticle(t, db, userID, title)
	if err := db.Model(article).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate test article: %v", err)
	}
	article.CreatedAt = createdAt
	return article
}
