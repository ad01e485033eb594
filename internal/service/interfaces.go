package service

import "context"

// EmailSender sends account emails. Satisfied by EmailService.
type EmailSender interface {
	SendVerificationEmail(to, username, token string) error
}

// ImageStore covers the two upload paths: one-time direct-upload URLs when
// Cloudflare is configured, server-side storage otherwise. Satisfied by
// ImageService.
type ImageStore interface {
	CanIssueUploadURLs() bool
	IssueUploadURL(ctx context.Context) (string, error)
	UploadImage(ctx context.Context, imageData []byte, contentType string) (string, error)
}
