package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/types"
)

// CommentHandler handles article comments.
type CommentHandler struct {
	commentService *service.CommentService
	authService    *service.AuthService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *service.CommentService, authService *service.AuthService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		authService:    authService,
	}
}

// RegisterRoutes registers the comment routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/articles/:id/comments", h.ListComments)
	router.POST("/articles/:id/comments", middleware.AuthMiddleware(h.authService), h.CreateComment)
	router.PUT("/comments/:id", middleware.AuthMiddleware(h.authService), h.UpdateComment)
	router.DELETE("/comments/:id", middleware.AuthMiddleware(h.authService), h.DeleteComment)
}

// ListComments returns an article's comments in creation order
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	comments, err := h.commentService.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment adds a comment to an article
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), articleID, userID, req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// UpdateComment replaces a comment's body; author-only
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), uint(commentID), userID, req.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment; author-only
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), uint(commentID), userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
