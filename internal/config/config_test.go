package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitsync.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Backend)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitsync.toml")
	content := "data_dir = \"/tmp/fit\"\nbackend = \"jsonfile\"\nlog_level = \"warn\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{DataDir: "/tmp/fit", Backend: "jsonfile", LogLevel: "warn"}, cfg)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitsync.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
