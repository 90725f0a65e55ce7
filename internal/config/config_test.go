package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresBaseURL(t *testing.T) {
	os.Unsetenv("METODO_BASE_URL")

	err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METODO_BASE_URL")
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Setenv("METODO_BASE_URL", "https://api.example.com")
	defer os.Unsetenv("METODO_BASE_URL")

	err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, AppConfig)

	assert.Equal(t, "https://api.example.com", AppConfig.BaseURL)
	assert.Equal(t, "https://auth.emergentagent.com/", AppConfig.AuthURL)
	assert.Equal(t, "http://localhost:3000", AppConfig.AppURL)
	assert.Equal(t, 30*time.Second, AppConfig.HTTPTimeout)
	assert.Equal(t, "development", AppConfig.Environment)
	assert.False(t, AppConfig.TracingEnabled)
	assert.NotEmpty(t, AppConfig.TokenFile)
}

func TestLoadConfig_Overrides(t *testing.T) {
	os.Setenv("METODO_BASE_URL", "https://api.example.com")
	os.Setenv("METODO_AUTH_URL", "https://auth.example.com/")
	os.Setenv("METODO_TOKEN_FILE", "/tmp/token")
	os.Setenv("HTTP_TIMEOUT", "5s")
	os.Setenv("TRACING_ENABLED", "true")
	os.Setenv("TRACING_ENDPOINT", "collector:4317")
	defer func() {
		for _, key := range []string{
			"METODO_BASE_URL", "METODO_AUTH_URL", "METODO_TOKEN_FILE",
			"HTTP_TIMEOUT", "TRACING_ENABLED", "TRACING_ENDPOINT",
		} {
			os.Unsetenv(key)
		}
	}()

	err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://auth.example.com/", AppConfig.AuthURL)
	assert.Equal(t, "/tmp/token", AppConfig.TokenFile)
	assert.Equal(t, 5*time.Second, AppConfig.HTTPTimeout)
	assert.True(t, AppConfig.TracingEnabled)
	assert.Equal(t, "collector:4317", AppConfig.TracingEndpoint)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	os.Setenv("METODO_BASE_URL", "https://api.example.com")
	os.Setenv("HTTP_TIMEOUT", "not-a-duration")
	defer func() {
		os.Unsetenv("METODO_BASE_URL")
		os.Unsetenv("HTTP_TIMEOUT")
	}()

	err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}
