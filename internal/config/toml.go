// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
}

// PracticeConfig maps practice-related settings, overridden by CLI flags
// only when explicitly set.
type PracticeConfig struct {
	Theme       *string  `toml:"theme"`
	Category    *string  `toml:"category"`
	Words       *int     `toml:"words"`
	WordList    *string  `toml:"wordlist"`
	Zen         *bool    `toml:"zen"`
	FocusWeak   *bool    `toml:"focus"`
	FocusWindow *int     `toml:"focus-window"`
	FocusTop    *int     `toml:"focus-top"`
	CurveWindow *int     `toml:"curve-window"`
	ExtTimeout  *float64 `toml:"external-timeout-seconds"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
