package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort      string
	ServerHost      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Generative provider configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Recipe catalog configuration
	MealDBBaseURL   string
	MealDBCategory  string
	UpstreamTimeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	Environment Environment
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secret files
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		ServerPort:      v.GetString("PORT"),
		ServerHost:      v.GetString("SERVER_HOST"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		GeminiBaseURL:   v.GetString("GEMINI_BASE_URL"),
		MealDBBaseURL:   v.GetString("MEALDB_BASE_URL"),
		MealDBCategory:  v.GetString("MEALDB_CATEGORY"),
		UpstreamTimeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		LogOutput:       v.GetString("LOG_OUTPUT"),
		Environment:     GetEnvironment(),
	}

	apiKey, err := readKey(v, "GEMINI_API_KEY")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.GeminiAPIKey = apiKey

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3001")
	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "")
	v.SetDefault("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1")
	v.SetDefault("MEALDB_CATEGORY", "Vegetarian")
	v.SetDefault("UPSTREAM_TIMEOUT", 30*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")
}

// readKey reads a secret from NAME, falling back to the file named by NAME_FILE
func readKey(v *viper.Viper, name string) (string, error) {
	if key := strings.TrimSpace(v.GetString(name)); key != "" {
		return key, nil
	}

	keyFile := v.GetString(name + "_FILE")
	if keyFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
