package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookai/backend/config"
)

func TestIssueUploadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/accounts/acct-1/images/v2/direct_upload", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"result":{"id":"img-1","uploadURL":"https://upload.example.com/one-time"}}`))
	}))
	defer server.Close()

	svc := NewImageService(&config.Config{
		CloudflareAccountID: "acct-1",
		CloudflareAPIToken:  "token-1",
		CloudflareAPIBase:   server.URL,
	}, nil)

	require.True(t, svc.CanIssueUploadURLs())

	url, err := svc.IssueUploadURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://upload.example.com/one-time", url)
}

func TestIssueUploadURLUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":10000,"message":"authentication error"}]}`))
	}))
	defer server.Close()

	svc := NewImageService(&config.Config{
		CloudflareAccountID: "acct-1",
		CloudflareAPIToken:  "bad-token",
		CloudflareAPIBase:   server.URL,
	}, nil)

	_, err := svc.IssueUploadURL(context.Background())
	assert.Error(t, err)
}

func TestCanIssueUploadURLsUnconfigured(t *testing.T) {
	svc := NewImageService(&config.Config{}, nil)
	assert.False(t, svc.CanIssueUploadURLs())

	_, err := svc.UploadImage(context.Background(), []byte("data"), "image/png")
	assert.Error(t, err)
}
