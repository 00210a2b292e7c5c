package config

import (
	_ "embed"
)

//go:embed defaults/mazehunt.yaml
var defaultMazehuntYAML []byte

// DefaultMazehuntConfig returns the default mazehunt configuration.
func DefaultMazehuntConfig() MazehuntConfig {
	return MazehuntConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 15,
		},
		Gameplay: GameplayConfig{
			RelicAward:      10,
			LevelClearTicks: 90,
			StartLevel:      1,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mazehunt", "mazehunt_patrol":
		return defaultMazehuntYAML
	default:
		return nil
	}
}
