// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the platform can list
// and create them without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/spellcatch/internal/core"
)

// Game is the interface every game implements. Games hold pure logic; the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier, used by the CLI and for score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score and status flags.
	State() core.GameState
}

// Round describes one finished word.
type Round struct {
	Lesson   string
	Word     string
	Won      bool
	Mistakes int
	Score    int // Total score when the round ended
}

// RoundReporter is implemented by games that report finished rounds for
// the platform to persist.
type RoundReporter interface {
	// DrainRounds returns the rounds finished since the last call.
	DrainRounds() []Round
}

// MutePreference is implemented by games with a mute toggle the platform
// remembers between sessions.
type MutePreference interface {
	Muted() bool
	SetMuted(muted bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics if the id is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
