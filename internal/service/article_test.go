package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/types"
)

func TestCreateArticle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")

	article, err := svc.Create(context.Background(), author.ID, &types.CreateArticleRequest{
		Title:   "Kimchi Stew",
		Content: "A warming stew.",
		Recipe:  "Boil everything.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, article.ID)
	assert.Equal(t, author.ID, article.UserID)
	assert.Nil(t, article.CategoryID)
}

func TestCreateArticleUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")

	missing := uuid.New().String()
	_, err := svc.Create(context.Background(), author.ID, &types.CreateArticleRequest{
		Title:      "Kimchi Stew",
		Content:    "A warming stew.",
		Recipe:     "Boil everything.",
		CategoryID: &missing,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category_id")
}

func TestUpdateArticleUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")
	article := createTestArticle(t, db, author.ID, "Kimchi Stew")

	missing := uuid.New().String()
	_, err := svc.Update(context.Background(), article.ID, author.ID, &types.UpdateArticleRequest{CategoryID: &missing})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category_id")

	fresh, err := svc.Get(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.CategoryID)
}

func TestUpdateArticleAuthorOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	article := createTestArticle(t, db, author.ID, "Kimchi Stew")

	newTitle := "Kimchi Jjigae"
	_, err := svc.Update(context.Background(), article.ID, other.ID, &types.UpdateArticleRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update(context.Background(), article.ID, author.ID, &types.UpdateArticleRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Kimchi Jjigae", updated.Title)
	assert.Equal(t, article.Content, updated.Content)
}

func TestDeleteArticleCascades(t *testing.T) {
	db := setupTestDB(t)
	articles := NewArticleService(db)
	comments := NewCommentService(db)
	recipes := NewRecipeService(db)
	engagement := NewEngagementService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	article := createTestArticle(t, db, author.ID, "Kimchi Stew")

	_, err := comments.Create(ctx, article.ID, reader.ID, "looks great")
	require.NoError(t, err)
	_, err = recipes.AddIngredient(ctx, article.ID, author.ID, &types.AddRecipeIngredientRequest{
		IngredientName: "kimchi",
		Quantity:       300,
		Unit:           "g",
	})
	require.NoError(t, err)
	_, err = engagement.ToggleLike(ctx, article.ID, reader.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleBookmark(ctx, article.ID, reader.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, articles.Delete(ctx, article.ID, reader.ID), ErrNotOwner)
	require.NoError(t, articles.Delete(ctx, article.ID, author.ID))

	_, err = articles.Get(ctx, article.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for table, model := range map[string]interface{}{
		"comments":           &models.Comment{},
		"recipe_ingredients": &models.RecipeIngredient{},
		"article_likes":      &models.ArticleLike{},
		"article_bookmarks":  &models.ArticleBookmark{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("article_id = ?", article.ID).Count(&count).Error)
		assert.Zero(t, count, "leftover rows in %s", table)
	}

	// The shared catalog entry survives the article.
	var kimchi models.Ingredient
	require.NoError(t, db.Where("name = ?", "kimchi").First(&kimchi).Error)
}

func TestListArticlesPaginates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		createTestArticleAt(t, db, author.ID, "Dish "+string(rune('A'+i)), base.Add(time.Duration(i)*time.Hour))
	}

	first, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, "Dish A", first[0].Title)

	second, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, second, 5)
	assert.Equal(t, "Dish K", second[0].Title)
}

func TestTrendingWindowAndOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	engagement := NewEngagementService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	fans := []*models.User{
		createTestUser(t, db, "fan1"),
		createTestUser(t, db, "fan2"),
	}

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	inside := createTestArticleAt(t, db, author.ID, "Inside", now.Add(-time.Hour))
	boundary := createTestArticleAt(t, db, author.ID, "Boundary", now.Add(-3*24*time.Hour))
	outside := createTestArticleAt(t, db, author.ID, "Outside", now.Add(-3*24*time.Hour-time.Second))

	for _, fan := range fans {
		_, err := engagement.ToggleLike(ctx, boundary.ID, fan.ID)
		require.NoError(t, err)
	}
	_, err := engagement.ToggleLike(ctx, inside.ID, fans[0].ID)
	require.NoError(t, err)
	_, err = engagement.ToggleLike(ctx, outside.ID, fans[0].ID)
	require.NoError(t, err)

	trending, err := svc.Trending(ctx, now)
	require.NoError(t, err)
	require.Len(t, trending, 2)

	// Fewest likes first, creation time breaking ties.
	assert.Equal(t, "Inside", trending[0].Title)
	assert.Equal(t, "Boundary", trending[1].Title)
	for _, a := range trending {
		assert.NotEqual(t, outside.ID, a.ID)
	}
}

func TestTrendingIncludesUnlikedArticles(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	createTestArticleAt(t, db, author.ID, "Quiet", now.Add(-time.Hour))

	trending, err := svc.Trending(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, "Quiet", trending[0].Title)
}

func TestBookmarkedOrderFollowsBookmarkTime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	engagement := NewEngagementService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := createTestArticleAt(t, db, author.ID, "Older", base)
	newer := createTestArticleAt(t, db, author.ID, "Newer", base.Add(time.Hour))

	// Bookmark the newer article first.
	_, err := engagement.ToggleBookmark(ctx, newer.ID, reader.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleBookmark(ctx, older.ID, reader.ID)
	require.NoError(t, err)

	bookmarked, err := svc.Bookmarked(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, bookmarked, 2)
	assert.Equal(t, "Newer", bookmarked[0].Title)
	assert.Equal(t, "Older", bookmarked[1].Title)
}

func TestByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	author := createTestUser(t, db, "author")

	category := models.Category{Name: "Korean", Info: "Korean home cooking"}
	require.NoError(t, db.Create(&category).Error)

	categoryID := category.ID.String()
	_, err := svc.Create(context.Background(), author.ID, &types.CreateArticleRequest{
		Title:      "Kimchi Stew",
		Content:    "A warming stew.",
		Recipe:     "Boil everything.",
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	createTestArticle(t, db, author.ID, "Uncategorized")

	articles, err := svc.ByCategory(context.Background(), category.ID)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Kimchi Stew", articles[0].Title)

	_, err = svc.ByCategory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
