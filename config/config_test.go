package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  port: 8080
database:
  driver: sqlite
  dsn: data/learning.db
session:
  secret: "test-secret"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "olp-session", cfg.Session.Name)
	assert.Equal(t, 86400, cfg.Session.MaxAge)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoadEnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("OLP_SERVER_PORT", "9000")
	t.Setenv("OLP_DATABASE_DRIVER", "postgres")

	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "session.secret")
}
