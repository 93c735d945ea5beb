package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "goblog", cfg.App.Name)
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "public/uploads", cfg.Upload.Dir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/goblog")
	t.Setenv("AUTH_COOKIE_NAME", "session")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "session", cfg.Auth.CookieName)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr())
}

func TestInvalidEnvIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.App.Port)
}
