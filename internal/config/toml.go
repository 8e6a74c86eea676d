// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Engine   EngineConfig   `toml:"engine"`
	History  HistoryConfig  `toml:"history"`
	Editor   EditorConfig   `toml:"editor"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// EngineConfig maps engine-related settings.
type EngineConfig struct {
	Binary *string `toml:"binary"`
}

// HistoryConfig maps run history settings.
type HistoryConfig struct {
	DBPath *string `toml:"db-path"`
	Limit  *int    `toml:"limit"`
}

// EditorConfig maps editor display settings.
type EditorConfig struct {
	ShowHelp *bool `toml:"show-help"`
}

// DefaultsConfig seeds a fresh analysis configuration. Values from an
// imported document always win over these.
type DefaultsConfig struct {
	Threads   *int  `toml:"threads"`
	Overwrite *bool `toml:"overwrite"`
	Silent    *bool `toml:"silent"`
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
