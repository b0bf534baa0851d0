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

	assert.Equal(t, 24, cfg.Auth.AccessTokenTTLHours)
	assert.Equal(t, 30, cfg.Auth.RefreshTokenTTLDays)
	assert.Equal(t, 60, cfg.Auth.ResetTokenTTLMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)

	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RefreshTokenTTL())
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_HOURS", "1")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}
