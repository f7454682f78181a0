package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable for the current environment
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}
	if cfg.DBHost == "" {
		errs = append(errs, "DB_HOST is required")
	}
	if cfg.DBName == "" {
		errs = append(errs, "DB_NAME is required")
	}

	// A missing database password is tolerated outside production (local
	// postgres with trust auth), never in production.
	if IsProduction() && cfg.DBPassword == "" {
		errs = append(errs, "DB_PASSWORD is required in production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}

	return nil
}
