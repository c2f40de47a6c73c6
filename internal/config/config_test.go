package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoerenD/equipment-calculator-web/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, "data/catalogs.json", cfg.CatalogFallbackFile)
	assert.Equal(t, time.Hour, cfg.ResultCacheTTL)
	assert.Empty(t, cfg.CatalogURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("REDIS_ADDRESS", "redis:6380")
	t.Setenv("CATALOG_URL", "https://example.com/catalogs.json")
	t.Setenv("RESULT_CACHE_TTL", "15m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddress)
	assert.Equal(t, "redis:6380", cfg.RedisAddress)
	assert.Equal(t, "https://example.com/catalogs.json", cfg.CatalogURL)
	assert.Equal(t, 15*time.Minute, cfg.ResultCacheTTL)
}

func TestLoadRejectsEmptyAddress(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "")

	_, err := config.Load()
	require.Error(t, err)
}
