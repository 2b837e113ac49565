// Package spellcatch hosts the letter-catching spelling engine as an arcade
// game. The engine runs on a virtual clock that advances by one platform
// frame per Step, so all engine callbacks happen on the platform's update
// goroutine.
package spellcatch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spellcatch/internal/config"
	"github.com/vovakirdan/spellcatch/internal/core"
	"github.com/vovakirdan/spellcatch/internal/registry"
	"github.com/vovakirdan/spellcatch/internal/schedule"
	"github.com/vovakirdan/spellcatch/internal/spelling"
	"github.com/vovakirdan/spellcatch/internal/words"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Spell every word of one lesson
	ModeEndless  Mode = "endless"  // Random words from all lessons until out of lives
)

// Layout constants, in terminal cells.
const (
	hudHeight  = 3
	footerRows = 1
	fieldLeft  = 2
	minScreenW = 40
)

// flashFrames is how long event feedback stays on screen.
const flashFrames = 45

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	lessonDir        string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLessonDir sets an extra lesson directory. Empty uses the configured one.
func SetLessonDir(dir string) {
	lessonDir = dir
}

func init() {
	registry.Register("spellcatch", func() registry.Game {
		return New()
	})
	registry.Register("spellcatch_endless", func() registry.Game {
		return NewEndless()
	})
}

// Game adapts spelling.Engine to the registry.Game interface.
type Game struct {
	mode Mode
	cfg  config.SpellcatchConfig

	difficulty *config.DifficultyManager
	lessonPick string // Lesson chosen with UseLesson, wins over the config
	lesson     words.Lesson
	deck       *words.Deck
	rng        *rand.Rand

	clock  *schedule.Manual
	engine *spelling.Engine
	frame  time.Duration // Virtual time per Step

	banner   *Banner
	narrator Narrator

	screenW, screenH int
	laneHeight       int
	tooSmall         bool

	paused       bool
	muted        bool
	over         bool // Out of lives or out of words
	completed    bool // Every word of the lesson was spelled
	clearing     bool // Between a spelled word and the next
	wordsSpelled int
	mistakes     int // Wrong catches in the current round

	rounds []registry.Round

	flashText  string
	flashColor core.Color
	flashLeft  int
}

// New creates a campaign game.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

func newGame(mode Mode) *Game {
	b := &Banner{}
	return &Game{mode: mode, banner: b, narrator: b}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "spellcatch_endless"
	}
	return "spellcatch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Spellcatch (Endless)"
	}
	return "Spellcatch"
}

// SetNarrator replaces the HUD banner narrator. Nil restores the banner.
func (g *Game) SetNarrator(n Narrator) {
	if n == nil {
		n = g.banner
	}
	g.narrator = n
}

// UseLesson selects the campaign lesson for this game only, so concurrent
// sessions can play different lessons. Takes effect on the next Reset.
func (g *Game) UseLesson(id string) {
	g.lessonPick = id
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSpellcatch(configPath)
	if err != nil {
		cfg = config.DefaultSpellcatchConfig()
	}
	if difficultyPreset != "" {
		config.ApplySpellcatchPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.loadWords()

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)

	g.clock = schedule.NewManual()
	g.engine = spelling.NewEngine(g.clock, cfg.Tuning(), g.rng.Int63())
	g.engine.SetListener(&roundEvents{g: g})
	g.engine.SetMuted(g.muted)
	g.engine.SetSpeed(g.difficulty.Speed(cfg.Engine.Speed, 0, 0))

	g.paused = false
	g.over = false
	g.completed = false
	g.clearing = false
	g.wordsSpelled = 0
	g.mistakes = 0
	g.rounds = nil
	g.flashLeft = 0
	g.banner.Hide()

	g.layout(runtime.ScreenW, runtime.ScreenH)
	g.nextRound()
}

// loadWords builds the deck for the current mode. A broken lesson
// directory falls back to the embedded lessons.
func (g *Game) loadWords() {
	dir := g.cfg.Words.Dir
	if lessonDir != "" {
		dir = lessonDir
	}
	lib, err := words.Load(dir)
	if err != nil {
		lib, _ = words.Load("")
	}

	if g.mode == ModeEndless {
		g.lesson = words.Lesson{ID: "all", Title: "All Lessons", Words: lib.All()}
		g.deck = words.NewDeck(g.lesson.Words, words.ModeEndless, g.rng.Int63())
		return
	}

	id := g.cfg.Words.Lesson
	if g.lessonPick != "" {
		id = g.lessonPick
	}
	lesson, ok := lib.Get(id)
	if !ok {
		lesson = lib.List()[0]
	}
	g.lesson = lesson
	g.deck = words.NewDeck(lesson.Words, words.ModeCampaign, 0)
}

// layout fits the field to the screen and tells the engine how wide it is.
func (g *Game) layout(w, h int) {
	g.screenW, g.screenH = w, h

	lanes := g.cfg.Engine.Lanes
	g.laneHeight = g.cfg.Gameplay.LaneHeight
	// Shrink lanes to one row before giving up on a short terminal.
	for g.laneHeight > 1 && hudHeight+lanes*g.laneHeight+footerRows > h {
		g.laneHeight--
	}
	g.tooSmall = w < minScreenW || hudHeight+lanes*g.laneHeight+footerRows > h

	fieldCells := max(w-fieldLeft, 0)
	g.engine.SetViewportWidth(float64(fieldCells) * g.cfg.Gameplay.UnitsPerCell)
}

// nextRound deals the next word and starts the engine on it.
func (g *Game) nextRound() {
	g.clearing = false

	word, ok := g.deck.Next()
	if !ok {
		g.completed = true
		g.over = true
		return
	}

	g.mistakes = 0
	g.engine.NextWord(spelling.NewWord(word))
	if !g.cfg.Gameplay.CarryLives {
		g.engine.Reset()
	}
	if g.difficulty.IsEnabled() {
		g.engine.SetSpeed(g.difficulty.Speed(g.cfg.Engine.Speed, g.engine.Score(), g.wordsSpelled))
	}
	g.engine.Start()

	if !g.muted {
		g.narrator.Announce(word)
	}
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.over {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.frame),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionMute) {
		g.SetMuted(!g.muted)
	}

	if input.Has(core.ActionPause) && !g.over {
		g.togglePause()
	}

	if g.over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionUp) {
		g.engine.MoveUp()
	}
	if input.Has(core.ActionDown) {
		g.engine.MoveDown()
	}

	g.clock.Advance(g.frame)
	g.banner.Tick()
	if g.flashLeft > 0 {
		g.flashLeft--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.engine.Pause()
		return
	}
	g.engine.Resume()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Muted reports whether narration is muted.
func (g *Game) Muted() bool {
	return g.muted
}

// SetMuted mutes or unmutes narration.
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
	if muted {
		g.banner.Hide()
	}
	if g.engine != nil {
		g.engine.SetMuted(muted)
	}
}

// DrainRounds returns the rounds finished since the last call.
func (g *Game) DrainRounds() []registry.Round {
	out := g.rounds
	g.rounds = nil
	return out
}

// WordsSpelled returns how many words were completed this game.
func (g *Game) WordsSpelled() int {
	return g.wordsSpelled
}

// Snapshot exposes the engine state for tests and spectators.
func (g *Game) Snapshot() spelling.Snapshot {
	return g.engine.Snapshot()
}

func (g *Game) flash(text string, c core.Color) {
	g.flashText = text
	g.flashColor = c
	g.flashLeft = flashFrames
}

func (g *Game) finishRound(won bool) {
	g.rounds = append(g.rounds, registry.Round{
		Lesson:   g.lesson.ID,
		Word:     g.engine.Word(),
		Won:      won,
		Mistakes: g.mistakes,
		Score:    g.engine.Score(),
	})
}

// roundEvents turns engine events into HUD feedback and round records.
type roundEvents struct {
	spelling.NopListener
	g *Game
}

func (e *roundEvents) CorrectLetter(letter rune) {
	e.g.flash(string(letter)+"!", core.ColorBrightGreen)
}

func (e *roundEvents) WrongLetter(actual, expected rune) {
	e.g.mistakes++
	e.g.flash("Oops! "+string(actual)+" is not "+string(expected), core.ColorBrightRed)
}

func (e *roundEvents) WordComplete(word string) {
	g := e.g
	g.wordsSpelled++
	g.finishRound(true)
	g.flash("You spelled "+word+"!", core.ColorBrightYellow)
	g.clearing = true
	g.clock.AfterFunc(g.cfg.RoundClearDelay(), g.nextRound)
}

func (e *roundEvents) GameOver() {
	e.g.finishRound(false)
	e.g.over = true
}
