package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultTeam.DefaultSize, cfg.Team.DefaultSize)
	assert.Equal(t, DefaultTeam.RequiredRoles, cfg.Team.RequiredRoles)
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce())
	assert.True(t, cfg.Output.Color)
	assert.NotContains(t, cfg.DataDir, "~")
	assert.Equal(t, filepath.Join(cfg.DataDir, DefaultDBName), cfg.DBPath())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: tr
data_dir: `+dir+`
roster_file: `+filepath.Join(dir, "roster.yaml")+`
team:
  default_size: 5
  required_roles: [foreman]
watch:
  debounce_ms: 50
`), 0o644))
	t.Setenv("STELLAR_LANGUAGE", "en")
	t.Setenv("STELLAR_OUTPUT_WIDTH", "120")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language, "environment wins over file")
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "roster.yaml"), cfg.RosterFile)
	assert.Equal(t, 5, cfg.Team.DefaultSize)
	assert.Equal(t, []string{"foreman"}, cfg.Team.RequiredRoles)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce())
	assert.Equal(t, 120, cfg.Output.Width)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "y"), expandPath("~/x/y"))
	assert.Equal(t, "/abs", expandPath("/abs"))
}
