package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cookai/backend/config"
	"github.com/cookai/backend/internal/api"
	"github.com/cookai/backend/internal/database"
	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/router"
	"github.com/cookai/backend/internal/server"
	"github.com/cookai/backend/internal/service"
)

func main() {
	logger := log.New(os.Stdout, "[cookai] ", log.LstdFlags)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	healthDB, err := database.NewHealthDB(cfg)
	if err != nil {
		logger.Printf("Health check database unavailable: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to redis: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		// Direct Cloudflare uploads still work without S3.
		logger.Printf("S3 storage unavailable: %v", err)
		s3Config = nil
	}

	emailService := service.NewEmailService(cfg)
	authService := service.NewAuthService(db, redisClient, emailService, cfg.JWTSecret)
	articleService := service.NewArticleService(db)
	commentService := service.NewCommentService(db)
	ingredientService := service.NewIngredientService(db)
	recipeService := service.NewRecipeService(db)
	engagementService := service.NewEngagementService(db)
	fridgeService := service.NewFridgeService(db)
	imageService := service.NewImageService(cfg, s3Config)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     30,
		KeyPrefix: "ratelimit:write",
	})

	handlers := router.Handlers{
		Auth:             api.NewAuthHandler(authService),
		Article:          api.NewArticleHandler(articleService, commentService, recipeService, engagementService, authService),
		Category:         api.NewCategoryHandler(db, articleService),
		Comment:          api.NewCommentHandler(commentService, authService),
		RecipeIngredient: api.NewRecipeIngredientHandler(recipeService, authService),
		Ingredient:       api.NewIngredientHandler(ingredientService, authService),
		Engagement:       api.NewEngagementHandler(engagementService, articleService, authService, rateLimiter),
		Fridge:           api.NewFridgeHandler(fridgeService, authService),
		Image:            api.NewImageHandler(imageService, authService, rateLimiter),
	}

	srv := server.NewServer(router.SetupRouter(handlers, healthDB), logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		logger.Printf("Received signal: %v", sig)
	}

	logger.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatalf("Server shutdown error: %v", err)
	}
	logger.Println("Server stopped")
}
