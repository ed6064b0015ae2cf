package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrEmptyConfig is returned by ReadFile for a blank file, which is usually a
// save caught halfway through.
var ErrEmptyConfig = errors.New("config file is empty")

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "dodge.yaml"

// localConfigDir is searched relative to the working directory.
var localConfigDir = "configs"

// Load loads the dodge configuration and reports which file it came from.
// Search order: customPath -> ~/.dodger/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// The returned source is empty when the embedded default was used.
func Load(customPath string) (DodgeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := ReadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files here are skipped, matching the embedded-default fallback.
	candidates := []string{userConfigPath(ConfigFileName), filepath.Join(localConfigDir, ConfigFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := ReadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// ReadFile reads, parses and validates a config file.
func ReadFile(path string) (DodgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return DodgeConfig{}, fmt.Errorf("failed to load config %s: %w", path, ErrEmptyConfig)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DodgeConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, fmt.Errorf("invalid: %w", err)
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", "configs", filename)
}
