package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesClientConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://example.com/food_blog")
	t.Setenv("API_REQUEST_TIMEOUT", "30s")
	t.Setenv("API_PAGE_LIMIT", "12")
	t.Setenv("STORAGE_DB_DSN", "/tmp/client.db")
	t.Setenv("SESSION_DIR", "/tmp/session")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://example.com/food_blog", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 12, cfg.API.PageLimit)
	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/session", cfg.Session.Dir)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
}
