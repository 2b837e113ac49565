package config

import (
	_ "embed"
)

//go:embed defaults/spellcatch.yaml
var defaultSpellcatchYAML []byte

// DefaultSpellcatchConfig returns the built-in configuration. The engine
// numbers are the canonical game defaults.
func DefaultSpellcatchConfig() SpellcatchConfig {
	return SpellcatchConfig{
		Engine: EngineConfig{
			TickMS:             16,
			Speed:              8.5,
			CollisionX:         150,
			CollisionHalfWidth: 60,
			Lanes:              5,
			WaveDelayMS:        500,
			MistakePenaltyMS:   300,
			TokenSize:          100,
			SpawnX:             1200,
		},
		Gameplay: GameplayConfig{
			StartLives:   3,
			CorrectBonus: 10,
			RoundClearMS: 1200,
			UnitsPerCell: 10,
			LaneHeight:   3,
			CarryLives:   true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionNone,
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
		Words: WordsConfig{
			Lesson: "starter",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "spellcatch", "spellcatch_endless":
		return defaultSpellcatchYAML
	default:
		return nil
	}
}
