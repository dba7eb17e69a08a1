// Package config loads CLI defaults from YAML files. Flags always override
// config values; config values override built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "resumepdf.yaml"

// Config holds CLI defaults for resume conversion.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Style  StyleConfig  `yaml:"style"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir  string `yaml:"dir"`  // default output directory ("" = ./output)
	Open bool   `yaml:"open"` // open the generated PDF in a viewer
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	Engine  string `yaml:"engine"`  // "auto", "chrome", "fpdf"
	OnePage bool   `yaml:"onePage"` // compress to one page by default
	Timeout string `yaml:"timeout"` // browser print timeout, e.g. "30s"
}

// StyleConfig defines styling defaults.
type StyleConfig struct {
	HeaderColor string `yaml:"headerColor"` // "#RRGGBB" or "white"
	FontScheme  string `yaml:"fontScheme"`  // "modern", "serif", "sans"
	Theme       string `yaml:"theme"`       // "light", "dark"
}

// SearchPaths returns the config lookup order: the working directory first,
// then the user config directory.
func SearchPaths() []string {
	paths := []string{DefaultFileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "resumepdf", "config.yaml"))
	}
	return paths
}

// Load reads a config file. With an explicit path, a missing file is an
// error; with path == "", the search paths are tried in order and a fully
// zero Config is returned when none exists.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return loadFile(p)
		}
	}
	return &Config{}, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return &cfg, nil
}
