package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the fields every environment needs. Cloudflare and
// SMTP settings are optional; the services they belong to degrade when they
// are missing.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"ServerPort": cfg.ServerPort,
		"DBHost":     cfg.DBHost,
		"DBPort":     cfg.DBPort,
		"DBUser":     cfg.DBUser,
		"DBName":     cfg.DBName,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "must not be empty"}
		}
	}

	if IsProduction() && cfg.JWTSecret == "" {
		return ValidationError{Field: "JWTSecret", Message: "must be set in production"}
	}

	return nil
}
