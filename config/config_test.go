package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, key, value string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	withEnv(t, "STORE_BACKEND", "memory")
	withEnv(t, "PORT", "")
	os.Unsetenv("PORT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidateDatabaseBackendRequiresURL(t *testing.T) {
	cfg := &Config{StoreBackend: BackendDatabase}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	cfg.DatabaseURL = "postgresql://localhost:5432/karigar_studio"
	assert.NoError(t, cfg.Validate())
}

func TestValidateMemoryBackendNeedsNoURL(t *testing.T) {
	cfg := &Config{StoreBackend: BackendMemory}
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{StoreBackend: "redis"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND")
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{GoEnv: "test"}
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.GoEnv = "production"
	assert.True(t, cfg.IsProduction())
}
