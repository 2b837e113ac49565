package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spellcatch/internal/spelling"
)

const configFile = "spellcatch.yaml"

// LoadSpellcatch loads the game configuration.
// Search order: customPath -> ~/.spellcatch/configs/spellcatch.yaml ->
// ./configs/spellcatch.yaml -> embedded default -> hardcoded default.
// Files are applied on top of the defaults, so they may set only some keys.
func LoadSpellcatch(customPath string) (SpellcatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpellcatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SpellcatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSpellcatchYAML)
	if err != nil {
		return DefaultSpellcatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (SpellcatchConfig, error) {
	cfg := DefaultSpellcatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpellcatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SpellcatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spellcatch", "configs", filename)
}

// Validate reports configuration values the game cannot run with.
func (c SpellcatchConfig) Validate() error {
	if err := c.Tuning().Validate(); err != nil {
		return err
	}
	switch {
	case c.Gameplay.UnitsPerCell <= 0:
		return errors.New("config: units_per_cell must be positive")
	case c.Gameplay.LaneHeight < 1:
		return errors.New("config: lane_height must be at least 1")
	case c.Gameplay.RoundClearMS < 0:
		return errors.New("config: round_clear_ms must not be negative")
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionRounds, ProgressionNone, "":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// Tuning converts the engine and gameplay sections to engine tuning.
// The player starts in the middle lane.
func (c SpellcatchConfig) Tuning() spelling.Tuning {
	return spelling.Tuning{
		TickInterval:       ms(c.Engine.TickMS),
		Speed:              c.Engine.Speed,
		CollisionX:         c.Engine.CollisionX,
		CollisionHalfWidth: c.Engine.CollisionHalfWidth,
		Lanes:              c.Engine.Lanes,
		WaveDelay:          ms(c.Engine.WaveDelayMS),
		MistakePenalty:     ms(c.Engine.MistakePenaltyMS),
		CorrectBonus:       c.Gameplay.CorrectBonus,
		StartLives:         c.Gameplay.StartLives,
		StartLane:          c.Engine.Lanes / 2,
		TokenSize:          c.Engine.TokenSize,
		DefaultSpawnX:      c.Engine.SpawnX,
		OffscreenX:         -c.Engine.TokenSize,
	}
}

// RoundClearDelay is the pause between a spelled word and the next one.
func (c SpellcatchConfig) RoundClearDelay() time.Duration {
	return ms(c.Gameplay.RoundClearMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
