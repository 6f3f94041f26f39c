package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/battlebots.yaml"

// Load loads the battle configuration.
// Search order: customPath -> ~/.battlebots/config.yaml -> ./configs/battlebots.yaml -> embedded default
//
// A file that exists but cannot be parsed or fails validation is an error;
// only missing files fall through to the next location.
func Load(customPath string) (BattleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BattleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseFile(customPath, data)
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return BattleConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parseFile(path, data)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBattleYAML)
	if err != nil {
		return DefaultBattleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document.
// Unknown keys are rejected so typos do not silently fall back to zero values.
func Parse(data []byte) (BattleConfig, error) {
	var cfg BattleConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return BattleConfig{}, fmt.Errorf("yaml decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return BattleConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg BattleConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func parseFile(path string, data []byte) (BattleConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		return BattleConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".battlebots", filename)
}
