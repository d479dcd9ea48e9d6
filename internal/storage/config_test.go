package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWritesDefaults(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not XDG based on this platform")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "Main", cfg.Scope)

	path := filepath.Join(dir, "webhub", "config.json")
	assert.Equal(t, path, cfg.Path())
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not XDG based on this platform")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "webhub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "webhub", "config.json"),
		[]byte(`{"backend": "json", "scope": "Work"}`), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "Work", cfg.Scope)
	assert.Equal(t, "default", cfg.Theme)
}

func TestDataDirHonoursXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("data dir is not XDG based on this platform")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "webhub"), dir)
}
