// Package config loads the TOML configuration for the fitsync binary.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings. Everything has a sensible default so a
// missing config file is not an error.
type Config struct {
	// DataDir is where the storage backend keeps its files.
	DataDir string `toml:"data_dir"`

	// Backend selects the storage backend: "sqlite", "jsonfile" or "auto"
	// (prefer sqlite, fall back to jsonfile).
	Backend string `toml:"backend"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:  defaultDataDir(),
		Backend:  "auto",
		LogLevel: "info",
	}
}

// Load reads the TOML file at path, applying defaults for any field the
// file omits. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.Backend == "" {
		cfg.Backend = "auto"
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(home, ".fitsync")
}
