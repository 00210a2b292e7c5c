package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMazehunt loads mazehunt configuration.
// Search order: customPath -> ~/.mazehunt/configs/mazehunt.yaml -> ./configs/mazehunt.yaml -> embedded default
func LoadMazehunt(customPath string) (MazehuntConfig, error) {
	var cfg MazehuntConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mazehunt.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mazehunt.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazehuntYAML, &cfg); err != nil {
		return DefaultMazehuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate reports the first configuration value that cannot produce a
// playable maze. Loading fails fast on an invalid explicit config rather
// than patching values at runtime.
func (c MazehuntConfig) Validate() error {
	if c.Grid.Width < 8 || c.Grid.Height < 8 {
		return fmt.Errorf("grid %dx%d is below the 8x8 minimum", c.Grid.Width, c.Grid.Height)
	}
	if c.Gameplay.RelicAward < 0 {
		return fmt.Errorf("relic_award must not be negative, got %d", c.Gameplay.RelicAward)
	}
	if c.Gameplay.LevelClearTicks < 0 {
		return fmt.Errorf("level_clear_ticks must not be negative, got %d", c.Gameplay.LevelClearTicks)
	}
	if c.Gameplay.StartLevel < 1 {
		return fmt.Errorf("start_level must be at least 1, got %d", c.Gameplay.StartLevel)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazehunt", "configs", filename)
}
