package spelling

import (
	"errors"
	"fmt"
	"time"
)

// Default tuning values. Existing difficulty tables are built against these,
// so they must not drift.
const (
	DefaultTickInterval       = 16 * time.Millisecond
	DefaultSpeed              = 8.5
	DefaultCollisionX         = 150.0
	DefaultCollisionHalfWidth = 60.0
	DefaultLanes              = 5
	DefaultWaveDelay          = 500 * time.Millisecond
	DefaultMistakePenalty     = 300 * time.Millisecond
	DefaultCorrectBonus       = 10
	DefaultStartLives         = 3
	DefaultTokenSize          = 100.0
	DefaultSpawnX             = 1200.0
)

// alphabetSize bounds the lane count: every lane needs a distinct letter.
const alphabetSize = 26

// Tuning holds the numeric policy of the simulation.
type Tuning struct {
	TickInterval       time.Duration // Time between simulation ticks
	Speed              float64       // Position units a token moves per tick
	CollisionX         float64       // Center of the collision zone
	CollisionHalfWidth float64       // Half-width of the collision zone
	Lanes              int
	WaveDelay          time.Duration // Delay before the next wave
	MistakePenalty     time.Duration // Extra delay after a wrong catch
	CorrectBonus       int           // Score for each correct letter
	StartLives         int
	StartLane          int
	TokenSize          float64 // Body length of a token
	DefaultSpawnX      float64 // Spawn position when no viewport width is known
	OffscreenX         float64 // Tokens left of this are removed
}

// DefaultTuning returns the standard tuning.
func DefaultTuning() Tuning {
	return Tuning{
		TickInterval:       DefaultTickInterval,
		Speed:              DefaultSpeed,
		CollisionX:         DefaultCollisionX,
		CollisionHalfWidth: DefaultCollisionHalfWidth,
		Lanes:              DefaultLanes,
		WaveDelay:          DefaultWaveDelay,
		MistakePenalty:     DefaultMistakePenalty,
		CorrectBonus:       DefaultCorrectBonus,
		StartLives:         DefaultStartLives,
		StartLane:          DefaultLanes / 2,
		TokenSize:          DefaultTokenSize,
		DefaultSpawnX:      DefaultSpawnX,
		OffscreenX:         -DefaultTokenSize,
	}
}

// Validate reports the first setting that would make the simulation unusable.
func (t Tuning) Validate() error {
	switch {
	case t.TickInterval <= 0:
		return errors.New("spelling: tick interval must be positive")
	case t.Speed <= 0:
		return errors.New("spelling: speed must be positive")
	case t.CollisionHalfWidth < 0:
		return errors.New("spelling: collision half-width must not be negative")
	case t.Lanes < 1 || t.Lanes > alphabetSize:
		return fmt.Errorf("spelling: lanes must be between 1 and %d, got %d", alphabetSize, t.Lanes)
	case t.StartLane < 0 || t.StartLane >= t.Lanes:
		return fmt.Errorf("spelling: start lane %d outside [0, %d)", t.StartLane, t.Lanes)
	case t.StartLives < 1:
		return errors.New("spelling: start lives must be at least 1")
	case t.WaveDelay < 0 || t.MistakePenalty < 0:
		return errors.New("spelling: delays must not be negative")
	}
	return nil
}
