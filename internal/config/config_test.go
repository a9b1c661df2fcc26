package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/config"
	"notekeeper/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 3019, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:3019", cfg.HTTP.GetAddress())
	assert.False(t, cfg.HTTP.GuardEdit)
	assert.False(t, cfg.HTTP.GuardDelete)
	assert.False(t, cfg.HTTP.ExposePasswordHashes)

	assert.Equal(t, "db.json", cfg.Storage.Path)
	assert.Equal(t, time.Hour, cfg.JWT.GetAccessTokenTTL())
	assert.Equal(t, 10, cfg.JWT.BCryptCost)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())
	assert.Equal(t, 5*time.Second, cfg.Shutdown.GetTimeout())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NOTEKEEPER_HTTP_PORT", "8088")
	t.Setenv("NOTEKEEPER_HTTP_GUARD_EDIT", "true")
	t.Setenv("NOTEKEEPER_HTTP_GUARD_DELETE", "true")
	t.Setenv("NOTEKEEPER_HTTP_EXPOSE_PASSWORD_HASHES", "true")
	t.Setenv("NOTEKEEPER_STORAGE_PATH", "/tmp/notes.json")
	t.Setenv("NOTEKEEPER_JWT_SECRET_KEY", "env-secret")
	t.Setenv("NOTEKEEPER_JWT_ACCESS_TOKEN_TTL", "30m")
	t.Setenv("NOTEKEEPER_LOGGER_MODE", "production")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.HTTP.Port)
	assert.True(t, cfg.HTTP.GuardEdit)
	assert.True(t, cfg.HTTP.GuardDelete)
	assert.True(t, cfg.HTTP.ExposePasswordHashes)
	assert.Equal(t, "/tmp/notes.json", cfg.Storage.Path)
	assert.Equal(t, "env-secret", cfg.JWT.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.JWT.GetAccessTokenTTL())
	assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
}

func TestAccessTokenTTLFallback(t *testing.T) {
	cfg := config.JWTConfig{AccessTokenTTL: "not-a-duration"}

	assert.Equal(t, time.Hour, cfg.GetAccessTokenTTL())
}
