package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "commerce-search-api", cfg.ServiceName)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "amazon", cfg.DefaultPlatform)
	assert.Equal(t, "hashed", cfg.QueryLogPIILevel)
	assert.True(t, cfg.AllowsAnyOrigin())
	assert.False(t, cfg.CatalogDBEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadNormalizesValues(t *testing.T) {
	t.Setenv("DEFAULT_PLATFORM", "  Flipkart ")
	t.Setenv("AMAZON_BASE_URL", "https://www.amazon.com/")
	t.Setenv("QUERY_LOG_PII_LEVEL", "FULL")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8081")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "flipkart", cfg.DefaultPlatform)
	assert.Equal(t, "https://www.amazon.com", cfg.AmazonBaseURL)
	assert.Equal(t, "full", cfg.QueryLogPIILevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8081"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowsAnyOrigin())
	assert.True(t, cfg.IsProduction())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "HTTP_PORT", "70000"},
		{"empty default platform", "DEFAULT_PLATFORM", "   "},
		{"unknown pii level", "QUERY_LOG_PII_LEVEL", "partial"},
		{"malformed duration", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresDSNWhenCatalogEnabled(t *testing.T) {
	t.Setenv("CATALOG_DB_ENABLED", "true")
	t.Setenv("DB_POSTGRESQL_WRITE_DSN", " ")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POSTGRESQL_WRITE_DSN")
}
