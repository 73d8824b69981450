package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.Provider.BaseURL)
	assert.True(t, cfg.Provider.RefreshOnStart)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TENDER_SERVER_PORT", "9090")
	t.Setenv("TENDER_PROVIDER_BASE_URL", "http://provider.internal/api")
	t.Setenv("TENDER_PROVIDER_REFRESH_ON_START", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://provider.internal/api", cfg.Provider.BaseURL)
	assert.False(t, cfg.Provider.RefreshOnStart)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	payload := []byte(`
server:
  port: 7070
provider:
  base_url: http://file.internal/api
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, payload, 0644))
	t.Setenv("TENDER_CONFIG_FILE", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "http://file.internal/api", cfg.Provider.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("TENDER_SERVER_PORT", "0")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestHistoryDirAndExportPath(t *testing.T) {
	cfg := &Config{Paths: PathsConfig{DataDir: "data", ExportsDir: "data/exports"}}

	assert.Equal(t, "data", cfg.HistoryDir())
	assert.Equal(t, filepath.Join("data", "exports", "tenders_x.csv"), cfg.ExportPath("tenders_x.csv"))
}
