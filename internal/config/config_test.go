package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_FileThenEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
db:
  path: /var/lib/jeevibe.db
auth:
  cron_secret: file-secret
ai:
  provider: mock
`), 0o600))

	t.Setenv("CRON_SECRET", "env-secret")
	t.Setenv("ADMIN_UIDS", "admin-1, admin-2")
	t.Setenv("JEEVIBE_DB", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "/var/lib/jeevibe.db", cfg.DB.Path)
	require.Equal(t, "env-secret", cfg.Auth.CronSecret)
	require.Equal(t, []string{"admin-1", "admin-2"}, cfg.Auth.AdminUIDs)
	require.Equal(t, "mock", cfg.AI.Provider)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("JEEVIBE_CONFIG", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "jeevibe.db", cfg.DB.Path)
}

func TestValidate_RejectsEmptyAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ""
	require.Error(t, cfg.Validate())
}

func TestValidate_RealProviderNeedsKey(t *testing.T) {
	cfg := Default()
	cfg.AI.Provider = "openai"
	cfg.AI.OpenAI.APIKey = ""
	require.Error(t, cfg.Validate())
}
