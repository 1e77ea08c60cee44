package config_test

import (
	"testing"

	"naijawalls/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIRESTORE_SA", "c2VjcmV0")
	t.Setenv("CATALOG_BACKEND", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.BackendFirestore, cfg.Backend)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_FirestoreRequiresCredentials(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "firestore")
	t.Setenv("FIRESTORE_SA", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Memory(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "memory")
	t.Setenv("FIRESTORE_SA", "")
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendMemory, cfg.Backend)
	assert.Equal(t, "9999", cfg.Port)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "dynamo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_OriginsSplit(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "memory")
	t.Setenv("ALLOWED_ORIGINS", "https://naijawalls.com, http://localhost:3000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://naijawalls.com", "http://localhost:3000"}, cfg.AllowedOrigins)
}
