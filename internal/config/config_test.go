package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttask/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")

	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIURL, cfg.APIURL)
	assert.False(t, cfg.NoColor)
}

func TestNew_ConfigFile(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	dir := t.TempDir()
	content := `
api_url = "https://tasks.example.com/"
no_color = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0644))

	cfg, err := config.New(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com", cfg.APIURL, "trailing slash is trimmed")
	assert.True(t, cfg.NoColor)
}

func TestNew_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `api_url = "https://file.example.com"`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0644))
	t.Setenv(config.EnvAPIURL, "https://env.example.com")

	cfg, err := config.New(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
}

func TestNew_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("not valid toml ["), 0644))

	_, err := config.New(dir)
	assert.Error(t, err)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", config.AppName), config.DefaultConfigDir())
}

func TestDefaultConfigDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", config.AppName), config.DefaultConfigDir())
}
