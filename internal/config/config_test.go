package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := &service{filePath: path}

	cfg := DefaultConfig()
	cfg.DatabasePath = "/tmp/test.db"
	cfg.SeedBinders = 7
	require.NoError(t, s.Save(cfg))

	loaded, err := s.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", loaded.DatabasePath)
	assert.Equal(t, int64(7), loaded.SeedBinders)
	assert.Equal(t, 4, loaded.UISettings.GridColumns)
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := &service{filePath: path}

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(20), cfg.SeedBinders)

	// The defaults must now exist on disk.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSparseFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	s := &service{filePath: path}
	cfg, err := s.LoadFromPath(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Equal(t, int64(20), cfg.SeedBinders)
	assert.Equal(t, 4, cfg.UISettings.GridColumns)
}
