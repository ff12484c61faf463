package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://dummyjson.com/products/", cfg.UpstreamBaseURL)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.False(t, cfg.Environment.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CATALOG_ADDR", ":9090")
	t.Setenv("CATALOG_UPSTREAM_BASE_URL", "http://catalog.local/products")
	t.Setenv("CATALOG_UPSTREAM_TIMEOUT", "750ms")
	t.Setenv("CATALOG_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://catalog.local/products", cfg.UpstreamBaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.UpstreamTimeout)
	assert.True(t, cfg.Environment.IsProduction())
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("CATALOG_UPSTREAM_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
