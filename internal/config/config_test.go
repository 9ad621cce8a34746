package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3030, cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:3000")
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("STATS_CACHE_TTL", "1m")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8088", cfg.Addr())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{
		HTTPPort:       70000,
		DatabaseURL:    "",
		RequestTimeout: time.Second,
		LogLevel:       "verbose",
		LogFormat:      "text",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.NotContains(t, err.Error(), "LOG_FORMAT")
}
