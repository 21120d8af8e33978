package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "bluscan_db", cfg.DBName)
	assert.Equal(t, 5, cfg.DBMaxRetries)
}

func TestIntEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SEC", "50")
	assert.Equal(t, 50, Load().RateLimitPerSec)

	t.Setenv("RATE_LIMIT_PER_SEC", "not-a-number")
	assert.Equal(t, 20, Load().RateLimitPerSec)
}
