package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookai/backend/internal/middleware"
	"github.com/cookai/backend/internal/service"
)

// maxImageBytes caps in-process uploads on the S3 fallback path.
const maxImageBytes = 10 << 20

// ImageHandler issues direct-upload URLs and accepts fallback uploads.
type ImageHandler struct {
	imageService service.ImageStore
	authService  *service.AuthService
	rateLimiter  *middleware.RateLimiter
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageService service.ImageStore, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
		rateLimiter:  rateLimiter,
	}
}

// RegisterRoutes registers the image routes
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	images.Use(middleware.AuthMiddleware(h.authService))
	if h.rateLimiter != nil {
		images.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		images.POST("/upload-url", h.IssueUploadURL)
		images.POST("/upload", h.UploadImage)
	}
}

// IssueUploadURL returns a one-time Cloudflare direct-upload URL. The client
// uploads there and stores the resulting URL on the article.
func (h *ImageHandler) IssueUploadURL(c *gin.Context) {
	if !h.imageService.CanIssueUploadURLs() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "direct upload is not configured"})
		return
	}

	uploadURL, err := h.imageService.IssueUploadURL(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to issue upload URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"upload_url": uploadURL})
}

// UploadImage stores the request body in S3 and returns the public URL.
// Fallback for deployments without Cloudflare Images.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	contentType := c.ContentType()
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported content type"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty image"})
		return
	}
	if len(data) > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	url, err := h.imageService.UploadImage(c.Request.Context(), data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}
