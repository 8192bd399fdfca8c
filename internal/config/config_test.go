package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ACADEMIA_DB_PATH", "SESSION_SECRET", "SESSION_TTL", "ACADEMIA_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./academia.db", cfg.DatabasePath)
	assert.Equal(t, "academia-secret-2024", cfg.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.Production)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("ACADEMIA_DB_PATH", "/var/lib/academia/academia.db")
	t.Setenv("SESSION_SECRET", "rotated-secret")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("ACADEMIA_ENV", "production")

	cfg := Load()

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "/var/lib/academia/academia.db", cfg.DatabasePath)
	assert.Equal(t, "rotated-secret", cfg.SessionSecret)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.Production)
}

func TestLoadInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	assert.Equal(t, 24*time.Hour, Load().SessionTTL)
}
