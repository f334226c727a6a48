package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Fixture store
	FixturePath   string
	WatchFixtures bool

	// Sorting
	CollationLocale string

	// Upload limits surfaced to clients via the config query
	UploadMaxFileSize        int
	UploadMaxFileUploadLimit int

	// Logging
	LogLevel string

	// CORS
	EnableCORS     bool
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8000"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		FixturePath:   getEnv("FIXTURE_PATH", ""),
		WatchFixtures: getEnvBool("WATCH_FIXTURES", true),

		CollationLocale: getEnv("COLLATION_LOCALE", "en"),

		UploadMaxFileSize:        getEnvInt("UPLOAD_MAX_FILE_SIZE", 1024*1024),
		UploadMaxFileUploadLimit: getEnvInt("UPLOAD_MAX_FILE_UPLOAD_LIMIT", 2),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
		AllowedOrigins: []string{
			getEnv("ALLOWED_ORIGIN", "http://localhost:8000"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.UploadMaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE must be positive")
	}
	if c.UploadMaxFileUploadLimit <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_UPLOAD_LIMIT must be positive")
	}
	if c.IsProduction() && c.WatchFixtures {
		return fmt.Errorf("WATCH_FIXTURES must be disabled in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
