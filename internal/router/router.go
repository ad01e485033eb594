package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cookai/backend/internal/api"
	"github.com/cookai/backend/internal/database"
	"github.com/cookai/backend/internal/middleware"
)

// Handlers bundles the API handlers the router mounts.
type Handlers struct {
	Auth             *api.AuthHandler
	Article          *api.ArticleHandler
	Category         *api.CategoryHandler
	Comment          *api.CommentHandler
	RecipeIngredient *api.RecipeIngredientHandler
	Ingredient       *api.IngredientHandler
	Engagement       *api.EngagementHandler
	Fridge           *api.FridgeHandler
	Image            *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, healthDB *database.HealthDB) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)
	h.Article.RegisterRoutes(v1)
	h.Category.RegisterRoutes(v1)
	h.Comment.RegisterRoutes(v1)
	h.RecipeIngredient.RegisterRoutes(v1)
	h.Ingredient.RegisterRoutes(v1)
	h.Engagement.RegisterRoutes(v1)
	h.Fridge.RegisterRoutes(v1)
	h.Image.RegisterRoutes(v1)

	return router
}
