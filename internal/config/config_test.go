package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "planner.db", cfg.Storage.Path)
	assert.Equal(t, "courses", cfg.Storage.Slot)
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenExp())
	assert.Empty(t, cfg.Auth.OwnerPasswordHash)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
storage:
  path: /tmp/acadplan.db
  slot: mycourses
auth:
  access_token_expiration: 1h
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/acadplan.db", cfg.Storage.Path)
	assert.Equal(t, "mycourses", cfg.Storage.Slot)
	assert.Equal(t, time.Hour, cfg.AccessTokenExp())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_SLOT", "envslot")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "envslot", cfg.Storage.Slot)
}

func TestLoadConfig_RejectsBadExpiration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  access_token_expiration: nonsense\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
