package config_test

import (
	"testing"
	"time"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "BCRYPT_COST", "RATE_LIMIT_RPS", "HTTP_READ_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT", "REDIS_ADDR", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 0.5, cfg.RateLimit.SubmitRPS)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("APP_ENV", "production")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 2.5, cfg.RateLimit.SubmitRPS)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.App.IsProduction())
}
