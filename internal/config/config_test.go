package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "JWT_EXPIRY",
		"HTTP_LISTEN_ADDR", "LOG_LEVEL", "APP_ENV", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 720*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, ":3000", cfg.HTTPListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.Production())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/law")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("HTTP_LISTEN_ADDR", ":8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/law", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, ":8080", cfg.HTTPListenAddr)
	assert.True(t, cfg.Production())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoad_BadExpiry(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRY", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRY")
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/law",
		JWTSecret:   "too-short",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 bytes")
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/law",
		JWTSecret:   "0123456789abcdef0123456789abcdef",
	}
	assert.NoError(t, cfg.Validate())
}
