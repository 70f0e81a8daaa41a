package config

import (
	"fmt"
	"net/url"
	"strconv"
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

// ValidationErrors collects every problem found in a configuration
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks that the configuration can start the server
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if cfg.GeminiAPIKey == "" {
		errs = append(errs, ValidationError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set"})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if u, err := url.Parse(cfg.MealDBBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "MEALDB_BASE_URL", Message: fmt.Sprintf("invalid url %q", cfg.MealDBBaseURL)})
	}

	if cfg.GeminiBaseURL != "" {
		if u, err := url.Parse(cfg.GeminiBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{Field: "GEMINI_BASE_URL", Message: fmt.Sprintf("invalid url %q", cfg.GeminiBaseURL)})
		}
	}

	if strings.TrimSpace(cfg.MealDBCategory) == "" {
		errs = append(errs, ValidationError{Field: "MEALDB_CATEGORY", Message: "must not be empty"})
	}

	if cfg.UpstreamTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "UPSTREAM_TIMEOUT", Message: "must be positive"})
	}

	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "SHUTDOWN_TIMEOUT", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
