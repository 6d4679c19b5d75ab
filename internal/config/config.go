// Package config loads ankiterm's TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// URL of the AnkiConnect endpoint.
	URL string `koanf:"url"`
	// Deck to review when none is given on the command line.
	Deck string `koanf:"deck"`
	// MediaDir overrides media directory discovery.
	MediaDir string `koanf:"media_dir"`
	// MaxCells is the inline-image width budget in character cells.
	MaxCells int `koanf:"max_cells"`
	// Images disables inline images at startup when false.
	Images *bool `koanf:"images"`
}

// Load reads configuration from path, or from the default locations when
// path is empty (~/.config/ankiterm/config.toml, then ./config.toml; last
// one wins). Missing files are fine; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := defaultPaths()
	if path != "" {
		paths = []string{path}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MediaDir != "" {
		cfg.MediaDir = expandPath(cfg.MediaDir)
	}
	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ankiterm", "config.toml"))
	}
	paths = append(paths, "config.toml")
	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ShowImages reports whether inline images start enabled (the default).
func (c *Config) ShowImages() bool {
	return c.Images == nil || *c.Images
}
