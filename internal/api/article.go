package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/models"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/types"
)

// ArticleHandler handles article CRUD and the derived listing views.
type ArticleHandler struct {
	articleService    *service.ArticleService
	commentService    *service.CommentService
	recipeService     *service.RecipeService
	engagementService *service.EngagementService
	authService       *service.AuthService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(
	articleService *service.ArticleService,
	commentService *service.CommentService,
	recipeService *service.RecipeService,
	engagementService *service.EngagementService,
	authService *service.AuthService,
) *ArticleHandler {
	return &ArticleHandler{
		articleService:    articleService,
		commentService:    commentService,
		recipeService:     recipeService,
		engagementService: engagementService,
		authService:       authService,
	}
}

// RegisterRoutes registers the article routes
func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	articles := router.Group("/articles")
	{
		articles.GET("", h.ListArticles)
		articles.GET("/:id", h.GetArticle)
		articles.POST("", middleware.AuthMiddleware(h.authService), h.CreateArticle)
		articles.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateArticle)
		articles.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteArticle)
	}
}

// ListArticles lists articles. ?filter=trending narrows to the trailing
// window ordered by like count; ?filter=bookmarked lists the caller's
// bookmarks; anything else is the default creation-order listing.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	switch c.Query("filter") {
	case "trending":
		articles, err := h.articleService.Trending(c.Request.Context(), time.Now())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"articles": articles})
	case "bookmarked":
		// Bookmarks are per-user, so this branch needs authentication.
		middleware.AuthMiddleware(h.authService)(c)
		if c.IsAborted() {
			return
		}
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		articles, err := h.articleService.Bookmarked(c.Request.Context(), userID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"articles": articles})
	default:
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		articles, err := h.articleService.List(c.Request.Context(), page, limit)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"articles": articles})
	}
}

// GetArticle returns the article detail: content plus comments, recipe
// ingredients and engagement counts computed at read time.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	comments, err := h.commentService.ListByArticle(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	ingredients, err := h.recipeService.ListIngredients(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	likes, bookmarks, err := h.engagementService.Counts(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	if ingredients == nil {
		ingredients = []models.RecipeIngredient{}
	}

	c.JSON(http.StatusOK, gin.H{
		"article":        article,
		"comments":       comments,
		"ingredients":    ingredients,
		"like_count":     likes,
		"bookmark_count": bookmarks,
	})
}

// CreateArticle creates an article owned by the caller
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req types.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// UpdateArticle applies a partial patch; author-only
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req types.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle removes an article and its owned rows; author-only
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id, userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
