// Package config reads the optional user configuration file that
// supplies defaults for a handful of flags. Command-line flags always
// override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const (
	configDirName  = "bgrep"
	configFileName = "config.toml"
)

// Config holds flag defaults from the on-disk configuration.
type Config struct {
	// Color is the default --color mode: auto, always or never.
	Color string `toml:"color"`

	// TrimEndingNewline defaults -n/--trim-ending-newline.
	TrimEndingNewline bool `toml:"trim_ending_newline"`

	// Unicode defaults -u/--unicode.
	Unicode bool `toml:"unicode"`

	// Jobs defaults --jobs. Zero keeps the per-CPU default.
	Jobs int `toml:"jobs"`

	// PresetFile defaults --preset-file.
	PresetFile string `toml:"preset_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Color: "auto"}
}

// Path returns the default config file location under the user config
// directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the config file from the default location. A missing file
// is not an error: defaults are returned.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file from path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("config file %s: invalid color mode %q", path, cfg.Color)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}

	return cfg, nil
}
