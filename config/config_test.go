package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeEnvFile(t, "APP_PORT=9090\nDB_NAME=amigos\nJWT_SECRET=s3cret\nREDIS_ENABLED=true\nCACHE_TTL=30s\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "amigos", cfg.DB.Name)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 100, cfg.DB.MaxOpenConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "APP_PORT=9090\nJWT_SECRET=from-file\n")
	t.Setenv("APP_PORT", "7070")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(writeEnvFile(t, "APP_PORT=1\n"))
	assert.Error(t, err)
}
