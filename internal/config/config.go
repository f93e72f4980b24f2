// Package config loads and saves the cubestate YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubestate"
)

const (
	dirName  = ".cubestate"
	fileName = "config.yaml"
	dbName   = "cubestate.db"
)

// Config holds user settings. Zero fields fall back to defaults.
type Config struct {
	DBPath         string            `yaml:"db_path,omitempty"`
	ScrambleLength int               `yaml:"scramble_length,omitempty"`
	Scheme         map[string]string `yaml:"scheme,omitempty"` // color name -> face letter
}

// Dir returns the settings directory in the user's home directory,
// creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config at path. A missing file is not an error and
// yields an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ScrambleLength < 0 {
		return nil, fmt.Errorf("config %s: scramble_length must not be negative", path)
	}
	return &cfg, nil
}

// Save writes the config to path, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Database returns the configured database path, or the default one next
// to the config file's directory.
func (c *Config) Database() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbName), nil
}

// Scramble returns the configured scramble length or the library default.
func (c *Config) Scramble() int {
	if c.ScrambleLength > 0 {
		return c.ScrambleLength
	}
	return cubestate.DefaultScrambleLength
}

// ColorScheme converts the configured scheme. An empty scheme is the
// default one.
func (c *Config) ColorScheme() (cubestate.Scheme, error) {
	if len(c.Scheme) == 0 {
		return cubestate.DefaultScheme, nil
	}

	scheme := make(cubestate.Scheme, len(c.Scheme))
	for name, letter := range c.Scheme {
		letter = strings.ToUpper(strings.TrimSpace(letter))
		if len(letter) != 1 {
			return nil, fmt.Errorf("scheme color %q: invalid face %q", name, letter)
		}
		face, ok := cubestate.ParseFace(letter[0])
		if !ok {
			return nil, fmt.Errorf("scheme color %q: invalid face %q", name, letter)
		}
		scheme[strings.ToLower(strings.TrimSpace(name))] = face
	}
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	return scheme, nil
}
