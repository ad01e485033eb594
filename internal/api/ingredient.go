package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/service"
	"github.com/cookai/backend/internal/types"
)

// IngredientHandler handles the ingredient catalog and purchase links.
type IngredientHandler struct {
	ingredientService *service.IngredientService
	authService       *service.AuthService
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(ingredientService *service.IngredientService, authService *service.AuthService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		authService:       authService,
	}
}

// RegisterRoutes registers the ingredient routes
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.GET("/:id/links", h.ListLinks)
		ingredients.POST("", middleware.AuthMiddleware(h.authService), h.CreateIngredient)
		ingredients.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateIngredient)
		ingredients.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteIngredient)
		ingredients.POST("/:id/links", middleware.AuthMiddleware(h.authService), h.AddLink)
	}
}

// GetIngredient returns one catalog entry
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := h.ingredientService.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

// CreateIngredient registers an ingredient by name. Resolution is
// idempotent: an existing name returns the existing row.
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req types.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientService.Resolve(c.Request.Context(), req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if req.Info != "" && ingredient.Info == "" {
		ingredient, err = h.ingredientService.UpdateInfo(c.Request.Context(), ingredient.ID, req.Info)
		if err != nil {
			writeServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient replaces the free-text info
func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var req types.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientService.UpdateInfo(c.Request.Context(), id, req.Info)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient removes a catalog entry and everything referencing it
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	if err := h.ingredientService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddLink attaches a purchase/reference link
func (h *IngredientHandler) AddLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var req types.AddIngredientLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.ingredientService.AddLink(c.Request.Context(), id, req.URL, req.ImageURL)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// ListLinks returns an ingredient's links
func (h *IngredientHandler) ListLinks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	links, err := h.ingredientService.ListLinks(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}
