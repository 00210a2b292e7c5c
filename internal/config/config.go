// Package config provides YAML-based game configuration loading and
// difficulty presets for the mazehunt platform.
package config

// MazehuntConfig contains all tunable configuration for the game.
// Hunter cadence formulas and hazard timing are part of the behavior
// contract and live in the game package, not here.
type MazehuntConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the maze dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines scoring and level-flow parameters.
type GameplayConfig struct {
	RelicAward      int `yaml:"relic_award"`       // Points per collected relic
	LevelClearTicks int `yaml:"level_clear_ticks"` // Pause between levels
	StartLevel      int `yaml:"start_level"`       // First level number (>= 1)
}

// DifficultyConfig defines how the level number progresses.
type DifficultyConfig struct {
	// Progression controls whether clearing a level advances the level
	// number. When false the same level number is regenerated each time.
	Progression bool `yaml:"progression"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level number for a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 4
	default:
		return 1
	}
}

// ApplyMazehuntPreset modifies the config based on a difficulty preset.
// The "fixed" preset disables level progression and keeps the configured
// start level.
func ApplyMazehuntPreset(cfg *MazehuntConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Progression = false
		return
	}
	cfg.Difficulty.Progression = true
	cfg.Gameplay.StartLevel = StartLevelForPreset(preset)
}
