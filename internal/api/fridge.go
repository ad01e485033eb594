package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/types"
)

// FridgeHandler handles the per-user ingredient inventory.
type FridgeHandler struct {
	fridgeService *service.FridgeService
	authService   *service.AuthService
}

// NewFridgeHandler creates a new FridgeHandler
func NewFridgeHandler(fridgeService *service.FridgeService, authService *service.AuthService) *FridgeHandler {
	return &FridgeHandler{
		fridgeService: fridgeService,
		authService:   authService,
	}
}

// RegisterRoutes registers the fridge routes
func (h *FridgeHandler) RegisterRoutes(router *gin.RouterGroup) {
	fridge := router.Group("/fridge")
	fridge.Use(middleware.AuthMiddleware(h.authService))
	{
		fridge.GET("", h.ListFridge)
		fridge.POST("", h.AddToFridge)
		fridge.DELETE("/:ingredientId", h.RemoveFromFridge)
	}
}

// ListFridge returns the caller's owned ingredients
func (h *FridgeHandler) ListFridge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	items, err := h.fridgeService.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fridge": items})
}

// AddToFridge marks an ingredient as owned, creating the catalog entry when
// the name is unseen. Adding the same name twice is a no-op.
func (h *FridgeHandler) AddToFridge(c *gin.Context) {
	var req types.AddFridgeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	item, err := h.fridgeService.Add(c.Request.Context(), userID, req.IngredientName)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveFromFridge removes an owned ingredient
func (h *FridgeHandler) RemoveFromFridge(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("ingredientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.fridgeService.Remove(c.Request.Context(), userID, ingredientID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
