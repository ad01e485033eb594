package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/service"
)

// EngagementHandler handles like/bookmark toggles and bookmark listing.
type EngagementHandler struct {
	engagementService *service.EngagementService
	articleService    *service.ArticleService
	authService       *service.AuthService
	rateLimiter       *middleware.RateLimiter
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(
	engagementService *service.EngagementService,
	articleService *service.ArticleService,
	authService *service.AuthService,
	rateLimiter *middleware.RateLimiter,
) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		articleService:    articleService,
		authService:       authService,
		rateLimiter:       rateLimiter,
	}
}

// RegisterRoutes registers the engagement routes
func (h *EngagementHandler) RegisterRoutes(router *gin.RouterGroup) {
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(h.authService))
	if h.rateLimiter != nil {
		protected.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		protected.POST("/articles/:id/like", h.ToggleLike)
		protected.POST("/articles/:id/bookmark", h.ToggleBookmark)
		protected.GET("/bookmarks", h.ListBookmarks)
	}
}

// ToggleLike flips the caller's membership in the article's like set
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	liked, err := h.engagementService.ToggleLike(c.Request.Context(), articleID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// ToggleBookmark flips the caller's membership in the article's bookmark set
func (h *EngagementHandler) ToggleBookmark(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	bookmarked, err := h.engagementService.ToggleBookmark(c.Request.Context(), articleID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// ListBookmarks returns the caller's bookmarked articles in bookmark order
func (h *EngagementHandler) ListBookmarks(c *gin.Context) {
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
}
