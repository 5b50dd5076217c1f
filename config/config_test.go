package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseConfig(t *testing.T) *AppConfig {
	t.Helper()
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	return &cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := parseConfig(t)

	assert.False(t, cfg.IsDev)

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "website", cfg.Postgres.User)
	assert.Equal(t, "website", cfg.Postgres.Name)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)

	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ProjectTTL)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.MetricsEnabled)

	assert.Empty(t, cfg.Auth.AdminEmails)
	assert.Equal(t, 15*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, "http://localhost:9099", cfg.Auth.Identity.BaseURL)
	assert.Equal(t, "customAttributes.role", cfg.Auth.Identity.RoleClaimPath)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_RUN_MIGRATIONS_ON_START", "false")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_PROJECT_TTL", "90s")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("ADMIN_EMAILS", "a@example.com,b@example.com")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("IDENTITY_BASE_URL", "https://identity.example.com")
	t.Setenv("IDENTITY_SCOPES", "scope-a scope-b")

	cfg := parseConfig(t)

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.False(t, cfg.Postgres.RunMigrationsOnStart)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Cache.ProjectTTL)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Auth.AdminEmails)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, "https://identity.example.com", cfg.Auth.Identity.BaseURL)
	assert.Equal(t, []string{"scope-a", "scope-b"}, cfg.Auth.Identity.Scopes)
}

func TestAppConfig_DevModeDetection(t *testing.T) {
	t.Run("DEV flag", func(t *testing.T) {
		t.Setenv("DEV", "true")
		assert.True(t, parseConfig(t).IsDev)
	})

	t.Run("NODE_ENV development fallback", func(t *testing.T) {
		t.Setenv("NODE_ENV", "development")
		assert.True(t, parseConfig(t).IsDev)
	})

	t.Run("NODE_ENV production stays non-dev", func(t *testing.T) {
		t.Setenv("NODE_ENV", "production")
		assert.False(t, parseConfig(t).IsDev)
	})
}

func TestAuthConfig_Sanitize(t *testing.T) {
	t.Setenv("SESSION_TTL", "-5m")

	cfg := parseConfig(t)
	assert.Equal(t, 15*time.Minute, cfg.Auth.SessionTTL, "non-positive TTL falls back to the default")
}
