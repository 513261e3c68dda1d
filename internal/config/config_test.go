package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("/data/pb")
	cfg.Export.ShareCommand = "xdg-open"
	cfg.Defaults.Currency = "USD"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Vault.Dir, got.Vault.Dir)
	assert.Equal(t, cfg.Export.Dir, got.Export.Dir)
	assert.Equal(t, "xdg-open", got.Export.ShareCommand)
	assert.Equal(t, "USD", got.Defaults.Currency)
	assert.Equal(t, cfg.Logging.Level, got.Logging.Level)
	assert.Equal(t, cfg.Logging.Format, got.Logging.Format)
}

func TestDefaults(t *testing.T) {
	cfg := Default("/data/pb")

	assert.Equal(t, filepath.Join("/data/pb", "vault"), cfg.Vault.Dir)
	assert.Equal(t, filepath.Join("/data/pb", "exports"), cfg.Export.Dir)
	assert.Equal(t, "INR", cfg.Defaults.Currency)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Export.ShareCommand)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHome_EnvOverride(t *testing.T) {
	t.Setenv("POCKETBOOK_HOME", "/tmp/pbtest")

	home, err := Home()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pbtest", home)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("/data/pb")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "currency: INR")
	assert.Contains(t, contents, "level: info")
}
