package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/service"
)

// CategoryHandler serves the category catalog and per-category article
// listings. Categories are curated rows, so reads go straight to the db.
type CategoryHandler struct {
	db             *gorm.DB
	articleService *service.ArticleService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(db *gorm.DB, articleService *service.ArticleService) *CategoryHandler {
	return &CategoryHandler{
		db:             db,
		articleService: articleService,
	}
}

// RegisterRoutes registers the category routes
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id/articles", h.ListArticlesByCategory)
	}
}

// ListCategories returns every category
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListArticlesByCategory returns the articles filed under a category,
// oldest first.
func (h *CategoryHandler) ListArticlesByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var category models.Category
	if err := h.db.WithContext(c.Request.Context()).
		First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load category"})
		return
	}

	articles, err := h.articleService.ByCategory(c.Request.Context(), categoryID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "articles": articles})
}
