package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/spellcatch/internal/spelling"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultSpellcatchYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultSpellcatchConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSpellcatchConfig())
	}
}

func TestDefaultTuningMatchesEngine(t *testing.T) {
	got := DefaultSpellcatchConfig().Tuning()
	if got != spelling.DefaultTuning() {
		t.Errorf("Tuning() = %+v, expected %+v", got, spelling.DefaultTuning())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("engine:\n  speed: 12\ngameplay:\n  start_lives: 4\nwords:\n  lesson: animals\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSpellcatch(path)
	if err != nil {
		t.Fatalf("LoadSpellcatch() error: %v", err)
	}
	if cfg.Engine.Speed != 12 {
		t.Errorf("Speed = %v, expected 12", cfg.Engine.Speed)
	}
	if cfg.Gameplay.StartLives != 4 {
		t.Errorf("StartLives = %d, expected 4", cfg.Gameplay.StartLives)
	}
	if cfg.Words.Lesson != "animals" {
		t.Errorf("Lesson = %q, expected animals", cfg.Words.Lesson)
	}
	// Untouched keys keep their defaults
	if cfg.Engine.Lanes != 5 || cfg.Engine.TickMS != 16 {
		t.Errorf("Lanes = %d, TickMS = %d, expected defaults", cfg.Engine.Lanes, cfg.Engine.TickMS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSpellcatch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("engine: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpellcatch(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("engine:\n  lanes: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpellcatch(invalid); err == nil {
		t.Error("zero lanes should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SpellcatchConfig)
		valid  bool
	}{
		{"defaults", func(*SpellcatchConfig) {}, true},
		{"zero tick", func(c *SpellcatchConfig) { c.Engine.TickMS = 0 }, false},
		{"negative speed", func(c *SpellcatchConfig) { c.Engine.Speed = -1 }, false},
		{"zero units per cell", func(c *SpellcatchConfig) { c.Gameplay.UnitsPerCell = 0 }, false},
		{"zero lane height", func(c *SpellcatchConfig) { c.Gameplay.LaneHeight = 0 }, false},
		{"unknown progression", func(c *SpellcatchConfig) { c.Difficulty.Progression.Type = "time" }, false},
		{"rounds progression", func(c *SpellcatchConfig) { c.Difficulty.Progression.Type = ProgressionRounds }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSpellcatchConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestApplySpellcatchPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.2, 3},
		{DifficultyHard, true, 0.6, 2},
		{DifficultyFixed, false, 0.0, 3},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSpellcatchConfig()
			ApplySpellcatchPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Gameplay.StartLives != tc.lives {
				t.Errorf("StartLives = %d, expected %d", cfg.Gameplay.StartLives, tc.lives)
			}
			if tc.enabled && cfg.Difficulty.Progression.Type != ProgressionRounds {
				t.Errorf("progression = %q, expected rounds", cfg.Difficulty.Progression.Type)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected normal", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}
