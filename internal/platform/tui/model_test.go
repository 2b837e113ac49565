package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spellcatch/internal/core"
	"github.com/vovakirdan/spellcatch/internal/registry"
	"github.com/vovakirdan/spellcatch/internal/storage"
)

// stubGame ends after overAfter steps and reports queued rounds.
type stubGame struct {
	resets    int
	steps     int
	overAfter int
	score     int
	paused    bool
	muted     bool
	words     int
	rounds    []registry.Round
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionMute) {
		g.muted = !g.muted
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	over := g.overAfter > 0 && g.steps >= g.overAfter
	return core.GameState{Score: g.score, GameOver: over, Paused: g.paused}
}

func (g *stubGame) Muted() bool         { return g.muted }
func (g *stubGame) SetMuted(muted bool) { g.muted = muted }
func (g *stubGame) WordsSpelled() int   { return g.words }

func (g *stubGame) DrainRounds() []registry.Round {
	out := g.rounds
	g.rounds = nil
	return out
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var modelConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{Time: time.Now(), LoopID: m.loopID})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAfter: 2, score: 40, words: 4}
	m := NewModel(game, store, modelConfig, "")
	m.Init()

	for range 5 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 40 || scores[0].Words != 4 {
		t.Errorf("got score %d words %d, expected 40 and 4", scores[0].Score, scores[0].Words)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := NewModel(&stubGame{overAfter: 1}, store, modelConfig, "")
	m.Init()
	m = tick(t, m)

	if hs, _ := store.HighScore("stub"); hs != 0 {
		t.Errorf("got high score %d, expected nothing saved", hs)
	}
}

func TestModelPersistsRounds(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewModel(game, store, modelConfig, "")
	m.Init()

	game.rounds = []registry.Round{
		{Lesson: "starter", Word: "cat", Won: true, Score: 30},
		{Lesson: "starter", Word: "dog", Won: false, Mistakes: 3, Score: 30},
	}
	m = tick(t, m)
	m = tick(t, m)

	rounds, err := store.SessionRounds(m.SessionID())
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, expected 2", len(rounds))
	}
	if rounds[0].Word != "cat" || !rounds[0].Won || rounds[1].Mistakes != 3 {
		t.Errorf("unexpected rounds: %+v", rounds)
	}
	if rounds[0].GameID != "stub" {
		t.Errorf("got game id %q, expected stub", rounds[0].GameID)
	}
}

func TestModelRemembersMute(t *testing.T) {
	store := openStore(t)
	if err := store.SetMuted(true); err != nil {
		t.Fatalf("SetMuted() failed: %v", err)
	}

	game := &stubGame{}
	m := NewModel(game, store, modelConfig, "")
	m.Init()
	if !game.muted {
		t.Fatal("stored mute preference should be applied on start")
	}

	m, _ = press(t, m, runeKey('m'))
	m = tick(t, m)
	if game.muted {
		t.Fatal("m should unmute the game")
	}

	muted, err := store.Muted()
	if err != nil {
		t.Fatalf("Muted() failed: %v", err)
	}
	if muted {
		t.Error("unmute should be written to the store")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, modelConfig, "")
	m.Init()

	next, cmd := m.Update(TickMsg{Time: time.Now(), LoopID: m.loopID + 1000})
	m = next.(Model)
	if game.steps != 0 || cmd != nil {
		t.Error("a tick from another loop should be dropped")
	}

	m = tick(t, m)
	if game.steps != 1 {
		t.Errorf("got %d steps, expected 1", game.steps)
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, modelConfig, "")
	m.Init()
	m = tick(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}
	m = tick(t, m)

	m, _ = press(t, m, runeKey('p'))
	m = tick(t, m)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, modelConfig, "")
	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, modelConfig, "")
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if game.resets != 1 {
		t.Errorf("same size: got %d resets, expected 1", game.resets)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if game.resets != 2 {
		t.Errorf("new size: got %d resets, expected 2", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestNewModelGeneratesSessionID(t *testing.T) {
	a := NewModel(&stubGame{}, nil, modelConfig, "")
	b := NewModel(&stubGame{}, nil, modelConfig, "")
	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Errorf("got session ids %q and %q, expected distinct ids", a.SessionID(), b.SessionID())
	}
	if a.loopID == b.loopID {
		t.Error("models should not share a frame loop id")
	}

	c := NewModel(&stubGame{}, nil, modelConfig, "fixed")
	if c.SessionID() != "fixed" {
		t.Errorf("got %q, expected the given session id", c.SessionID())
	}
}
