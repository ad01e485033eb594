package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/cookai/backend/config"
)

// directUploadResponse is the envelope returned by the Cloudflare Images
// direct_upload endpoint.
type directUploadResponse struct {
	Success bool `json:"success"`
	Result  struct {
		ID        string `json:"id"`
		UploadURL string `json:"uploadURL"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ImageService issues one-time Cloudflare direct-upload URLs so clients can
// push images straight to the CDN. When Cloudflare is not configured it
// falls back to storing uploads in S3 itself.
type ImageService struct {
	cfAccountID string
	cfToken     string
	cfAPIBase   string
	s3Config    *config.S3Config
	client      *http.Client
}

// NewImageService creates a new ImageService instance
func NewImageService(cfg *config.Config, s3Config *config.S3Config) *ImageService {
	apiBase := cfg.CloudflareAPIBase
	if apiBase == "" {
		apiBase = "https://api.cloudflare.com/client/v4"
	}
	return &ImageService{
		cfAccountID: cfg.CloudflareAccountID,
		cfToken:     cfg.CloudflareAPIToken,
		cfAPIBase:   apiBase,
		s3Config:    s3Config,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CanIssueUploadURLs reports whether the Cloudflare path is configured.
func (s *ImageService) CanIssueUploadURLs() bool {
	return s.cfAccountID != "" && s.cfToken != ""
}

// IssueUploadURL requests a one-time direct-upload URL from Cloudflare
// Images. The core never sees the uploaded bytes; the client uploads
// directly and stores the resulting URL on the article or ingredient link.
func (s *ImageService) IssueUploadURL(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/accounts/%s/images/v2/direct_upload", s.cfAPIBase, s.cfAccountID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload URL request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result directUploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.Success || result.Result.UploadURL == "" {
		return "", fmt.Errorf("no upload URL in response: %s", string(body))
	}
	return result.Result.UploadURL, nil
}

// UploadImage stores image bytes in S3 and returns the public URL. Used when
// Cloudflare direct upload is not configured.
func (s *ImageService) UploadImage(ctx context.Context, imageData []byte, contentType string) (string, error) {
	if s.s3Config == nil {
		return "", fmt.Errorf("no image storage configured")
	}

	fileName := fmt.Sprintf("article-images/%s", uuid.New().String())
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] Uploaded image to S3: %s", publicURL)
	return publicURL, nil
}
