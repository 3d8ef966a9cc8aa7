package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.TrimEndingNewline)
	assert.Zero(t, cfg.Jobs)
}

func TestLoadFile(t *testing.T) {
	content := `color = "never"
trim_ending_newline = true
unicode = true
jobs = 4
preset_file = "/etc/bgrep/presets.yaml"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.TrimEndingNewline)
	assert.True(t, cfg.Unicode)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "/etc/bgrep/presets.yaml", cfg.PresetFile)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("jobs = 2\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestLoadFile_InvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`color = "rainbow"`), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = ["), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
