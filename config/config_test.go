package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/jobboard")
	t.Setenv("FRONTEND_URL", "https://jobs.example.com/")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/jobboard", cfg.DBUrl)
	// Trailing slash is stripped to avoid double slashes in origin checks.
	assert.Equal(t, "https://jobs.example.com", cfg.FrontendURL)
	assert.Equal(t, "console", cfg.LogFormat)
}
