package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "cookai", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BackendBaseURL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "cookai_staging")
	t.Setenv("JWT_SECRET", "override-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "cookai_staging", cfg.DBName)
	assert.Equal(t, "override-secret", cfg.JWTSecret)
}

func TestLoadConfigProductionSecrets(t *testing.T) {
	secretsDir := t.TempDir()
	secrets := map[string]string{
		"server_port": "8443",
		"server_host": "0.0.0.0",
		"db_host":     "db.internal",
		"db_port":     "5432",
		"db_user":     "cookai",
		"db_password": "secret",
		"db_name":     "cookai",
		"db_ssl_mode": "require",
		"jwt_secret":  "prod-secret",
	}
	for name, value := range secrets {
		require.NoError(t, os.WriteFile(filepath.Join(secretsDir, name), []byte(value+"\n"), 0o600))
	}

	t.Setenv("ENV", "production")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", secretsDir)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8443", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	// Secret values are trimmed of trailing whitespace.
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}

func TestLoadConfigProductionRequiresJWTSecret(t *testing.T) {
	secretsDir := t.TempDir()
	for name, value := range map[string]string{
		"server_port": "8443",
		"db_host":     "db.internal",
		"db_port":     "5432",
		"db_user":     "cookai",
		"db_name":     "cookai",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(secretsDir, name), []byte(value), 0o600))
	}

	t.Setenv("ENV", "production")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", secretsDir)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWTSecret")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.True(t, IsTest())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
