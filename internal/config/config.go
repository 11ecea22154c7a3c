// Package config handles the XDG configuration directory and base URL
// resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "ttask"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.toml"

	// DefaultAPIURL is used when neither the environment nor the config
	// file names a backend.
	DefaultAPIURL = "http://localhost:8000"

	// EnvAPIURL overrides the backend base URL when set.
	EnvAPIURL = "TTASK_API_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the backend base URL, without a trailing slash.
	APIURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// NoColor disables styled output.
	NoColor bool
}

// fileConfig is the on-disk shape of config.toml.
type fileConfig struct {
	APIURL  string `toml:"api_url"`
	NoColor bool   `toml:"no_color"`
}

// New creates a Config rooted at the default or specified directory and
// resolves the base URL: TTASK_API_URL, then config.toml, then the default.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, APIURL: DefaultAPIURL}

	fc, err := loadConfigFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}
	if fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	cfg.NoColor = fc.NoColor

	if env := strings.TrimSpace(os.Getenv(EnvAPIURL)); env != "" {
		cfg.APIURL = env
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func loadConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}
