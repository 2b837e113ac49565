// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// SpellcatchConfig contains all configuration for the spelling game.
type SpellcatchConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Words      WordsConfig      `yaml:"words"`
}

// EngineConfig defines the simulation numbers. Durations are milliseconds,
// positions are abstract units.
type EngineConfig struct {
	TickMS             int     `yaml:"tick_ms"`
	Speed              float64 `yaml:"speed"` // Units per tick
	CollisionX         float64 `yaml:"collision_x"`
	CollisionHalfWidth float64 `yaml:"collision_half_width"`
	Lanes              int     `yaml:"lanes"`
	WaveDelayMS        int     `yaml:"wave_delay_ms"`
	MistakePenaltyMS   int     `yaml:"mistake_penalty_ms"`
	TokenSize          float64 `yaml:"token_size"`
	SpawnX             float64 `yaml:"spawn_x"` // Used when the viewport width is unknown
}

// GameplayConfig defines round rules and how the field maps to the terminal.
type GameplayConfig struct {
	StartLives   int     `yaml:"start_lives"`
	CorrectBonus int     `yaml:"correct_bonus"`
	RoundClearMS int     `yaml:"round_clear_ms"` // Pause between a spelled word and the next
	UnitsPerCell float64 `yaml:"units_per_cell"` // Position units per terminal column
	LaneHeight   int     `yaml:"lane_height"`    // Terminal rows per lane
	CarryLives   bool    `yaml:"carry_lives"`    // Keep lives from one word to the next
}

// WordsConfig selects where words come from.
type WordsConfig struct {
	Dir    string `yaml:"dir"`    // Extra lesson directory, overrides embedded lessons with the same id
	Lesson string `yaml:"lesson"` // Lesson played by the campaign mode
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "rounds", or "none"
	MaxAt int    `yaml:"max_at"` // Score or round count at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// Progression types.
const (
	ProgressionScore  = "score"
	ProgressionRounds = "rounds"
	ProgressionNone   = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset named s. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// ApplySpellcatchPreset modifies the config based on a difficulty preset.
// Fixed keeps the engine numbers exactly as configured.
func ApplySpellcatchPreset(cfg *SpellcatchConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == ProgressionNone || cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = ProgressionRounds
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartLives = 5
	case DifficultyHard:
		cfg.Gameplay.StartLives = 2
	}
}
