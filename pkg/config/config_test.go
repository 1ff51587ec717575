package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("BACKEND_MODE", "local")
	t.Setenv("LOCAL_DATA_DIR", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendLocal, cfg.Backend.Mode)
	assert.Equal(t, "blackwoods.db", cfg.Backend.Local.DBFile)
	assert.Equal(t, "admin123", cfg.Backend.Local.SeedAdminPassword)
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.Equal(t, filepath.Join(cfg.Backend.Local.DataDir, "blackwoods.db"), cfg.Backend.Local.Path())
}

func TestLoad_ModoRemoto(t *testing.T) {
	t.Setenv("BACKEND_MODE", "REMOTE")
	t.Setenv("REMOTE_BASE_URL", "http://compta.example:5000/")
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendRemote, cfg.Backend.Mode)
	assert.Equal(t, "http://compta.example:5000", cfg.Backend.Remote.BaseURL, "sin barra final")
	assert.Equal(t, 7*time.Second, cfg.Backend.Remote.Timeout())
}

func TestLoad_ModoDesconocido(t *testing.T) {
	t.Setenv("BACKEND_MODE", "cloud")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestBackendConfig_TimeoutRemotoInvalido(t *testing.T) {
	c := config.BackendConfig{
		Mode:   config.BackendRemote,
		Remote: config.RemoteConfig{BaseURL: "http://localhost:5000", TimeoutSeconds: 0},
	}
	assert.Error(t, c.Validate())
}
