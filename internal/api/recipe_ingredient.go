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

// RecipeIngredientHandler handles the article/ingredient recipe links.
type RecipeIngredientHandler struct {
	recipeService *service.RecipeService
	authService   *service.AuthService
}

// NewRecipeIngredientHandler creates a new RecipeIngredientHandler
func NewRecipeIngredientHandler(recipeService *service.RecipeService, authService *service.AuthService) *RecipeIngredientHandler {
	return &RecipeIngredientHandler{
		recipeService: recipeService,
		authService:   authService,
	}
}

// RegisterRoutes registers the recipe composition routes
func (h *RecipeIngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/articles/:id/ingredients", h.ListIngredients)
	router.POST("/articles/:id/ingredients", middleware.AuthMiddleware(h.authService), h.AddIngredient)
	router.PUT("/recipe-ingredients/:id", middleware.AuthMiddleware(h.authService), h.UpdateIngredient)
	router.DELETE("/recipe-ingredients/:id", middleware.AuthMiddleware(h.authService), h.RemoveIngredient)
}

// ListIngredients returns an article's recipe links in the order they were
// added
func (h *RecipeIngredientHandler) ListIngredients(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	links, err := h.recipeService.ListIngredients(c.Request.Context(), articleID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": links})
}

// AddIngredient links a named ingredient to an article's recipe
func (h *RecipeIngredientHandler) AddIngredient(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req types.AddRecipeIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	link, err := h.recipeService.AddIngredient(c.Request.Context(), articleID, userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateIngredient partially updates a recipe link; author-only
func (h *RecipeIngredientHandler) UpdateIngredient(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ingredient id"})
		return
	}

	var req types.UpdateRecipeIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	link, err := h.recipeService.UpdateIngredient(c.Request.Context(), uint(linkID), userID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// RemoveIngredient deletes the association row only; author-only
func (h *RecipeIngredientHandler) RemoveIngredient(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ingredient id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recipeService.RemoveIngredient(c.Request.Context(), uint(linkID), userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
