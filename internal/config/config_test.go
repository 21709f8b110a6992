package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "kashvi", cfg.Database.Name)
	assert.Equal(t, 100, cfg.Database.MaxPoolSize)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "kashvi_token", cfg.JWT.CookieName)
	assert.NotEmpty(t, cfg.Admin.Email)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGODB_DATABASE", "kashvi_test")
	t.Setenv("ADMIN_EMAIL", "back-office@kashvijewels.com")
	t.Setenv("JWT_EXPIRY", "48h")
	t.Setenv("MONGODB_MAX_POOL_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "kashvi_test", cfg.Database.Name)
	assert.Equal(t, "back-office@kashvijewels.com", cfg.Admin.Email)
	assert.Equal(t, 48*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 25, cfg.Database.MaxPoolSize)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("MONGODB_MAX_POOL_SIZE", "plenty")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Database.MaxPoolSize)
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "next tuesday")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
}
