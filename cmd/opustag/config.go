package main

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// config holds CLI defaults that flags may override.
type config struct {
	Overwrite     bool
	InPlaceSuffix string
	Jobs          int
}

// defaultConfig returns a config with default values.
func defaultConfig() config {
	return config{
		InPlaceSuffix: ".otmp",
	}
}

// fileConfig mirrors config with TOML-friendly optional fields.
type fileConfig struct {
	Overwrite     *bool  `toml:"overwrite"`
	InPlaceSuffix string `toml:"in_place_suffix"`
	Jobs          int    `toml:"jobs"`
}

// loadFileConfig reads and parses a TOML config file from the given path.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// defaultConfigPath returns the default configuration file path,
// ~/.config/opustag/config.toml, or "" if the home directory is unknown.
func defaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".config", "opustag", "config.toml")
	}
	return ""
}

// applyFileConfig applies file values to cfg, skipping any setting whose
// flag was explicitly set on the command line.
func applyFileConfig(cfg *config, fc fileConfig, changed func(flag string) bool) {
	if fc.Overwrite != nil && !changed("overwrite") {
		cfg.Overwrite = *fc.Overwrite
	}
	if fc.InPlaceSuffix != "" {
		// Default suffix for a bare -i; an explicit -i=SUFFIX still wins.
		cfg.InPlaceSuffix = fc.InPlaceSuffix
	}
	if fc.Jobs > 0 && !changed("jobs") {
		cfg.Jobs = fc.Jobs
	}
}

// fileExists checks if a file exists at the given path.
func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
