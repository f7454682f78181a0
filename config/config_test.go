package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "resepku", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "https://resepku-recipe-images.s3.amazonaws.com/", cfg.StorageRootURL)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigStorageRootOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_ROOT_URL", "https://cdn.example.com/media/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/", cfg.StorageRootURL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "resepku",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=app password=secret dbname=resepku sslmode=require",
		cfg.DSN(),
	)
}

func TestValidateConfigProductionPassword(t *testing.T) {
	cfg := &Config{
		JWTSecret: "test-secret",
		DBHost:    "localhost",
		DBName:    "resepku",
	}

	t.Setenv("ENV", "development")
	assert.NoError(t, ValidateConfig(cfg))

	t.Setenv("ENV", "production")
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "staging")
	assert.Equal(t, Development, GetEnvironment())
}
