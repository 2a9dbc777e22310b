package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCoins loads the coin field configuration.
// Search order: customPath -> ~/.coinfall/configs/coins.yaml -> ./configs/coins.yaml -> embedded default.
// Fields missing from a document keep their default values.
func LoadCoins(customPath string) (CoinsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCoinsConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultCoinsConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("coins.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "coins.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultCoinsYAML)
	if err != nil {
		return DefaultCoinsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse validates a document and decodes it over the defaults.
func parse(data []byte) (CoinsConfig, error) {
	if err := Validate(data); err != nil {
		return CoinsConfig{}, err
	}
	cfg := DefaultCoinsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CoinsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coinfall", "configs", filename)
}
