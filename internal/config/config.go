package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// API configuration
	BaseURL string `json:"base_url"`
	AuthURL string `json:"auth_url"`
	AppURL  string `json:"app_url"`

	// Local session storage
	TokenFile string `json:"token_file"`

	// HTTP configuration
	HTTPTimeout time.Duration `json:"http_timeout"`

	// Environment
	Environment string `json:"environment"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	baseURL := os.Getenv("METODO_BASE_URL")
	if baseURL == "" {
		return fmt.Errorf("METODO_BASE_URL environment variable is required")
	}

	httpTimeout, err := time.ParseDuration(getEnvOrDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	tokenFile := os.Getenv("METODO_TOKEN_FILE")
	if tokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		tokenFile = filepath.Join(home, ".metodo21", "session_token")
	}

	AppConfig = &Config{
		BaseURL: baseURL,
		AuthURL: getEnvOrDefault("METODO_AUTH_URL", "https://auth.emergentagent.com/"),
		AppURL:  getEnvOrDefault("METODO_APP_URL", "http://localhost:3000"),

		TokenFile: tokenFile,

		HTTPTimeout: httpTimeout,

		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
