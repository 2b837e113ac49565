package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spellcatch/internal/games/spellcatch"
	"github.com/vovakirdan/spellcatch/internal/words"
)

var testLessons = []words.Lesson{
	{ID: "starter", Title: "Starter Words", Words: []string{"cat", "dog"}},
	{ID: "animals", Title: "Animals", Words: []string{"fox", "owl"}},
}

func menuPress(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuListsGames(t *testing.T) {
	m := NewMenuModel(nil, modelConfig, testLessons)

	if len(m.items) != 2 {
		t.Fatalf("got %d items, expected 2", len(m.items))
	}
	if m.items[0].GameID != "spellcatch" || !m.items[0].Lessons {
		t.Errorf("first item %+v, expected campaign with lessons", m.items[0])
	}
	if m.items[1].GameID != "spellcatch_endless" || m.items[1].Lessons {
		t.Errorf("second item %+v, expected endless without lessons", m.items[1])
	}
	if !strings.Contains(m.View(), "Spellcatch (Endless)") {
		t.Error("menu view should list the endless game")
	}
}

func TestMenuPicksLesson(t *testing.T) {
	m := NewMenuModel(nil, modelConfig, testLessons)

	m, _ = menuPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inLessonSelect || m.Selected() != nil {
		t.Fatal("campaign should open the lesson list")
	}
	if !strings.Contains(m.View(), "Animals") {
		t.Error("lesson list should show lesson titles")
	}

	m, _ = menuPress(t, m, runeKey('j'))
	m, cmd := menuPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "spellcatch" {
		t.Fatal("campaign should be selected")
	}
	if m.Lesson() != "animals" {
		t.Errorf("got lesson %q, expected animals", m.Lesson())
	}
	if cmd == nil {
		t.Error("selection should end the menu program")
	}
}

func TestMenuLessonBack(t *testing.T) {
	m := NewMenuModel(nil, modelConfig, testLessons)

	m, _ = menuPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = menuPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inLessonSelect || m.IsQuitting() {
		t.Error("esc should return to the game list")
	}
}

func TestMenuEndlessSkipsLessons(t *testing.T) {
	m := NewMenuModel(nil, modelConfig, testLessons)

	m, _ = menuPress(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "spellcatch_endless" {
		t.Fatal("endless should be selected directly")
	}
	if m.Lesson() != "" {
		t.Errorf("got lesson %q, expected none", m.Lesson())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, modelConfig, testLessons)
	m, _ = menuPress(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(nil, modelConfig, testLessons)
	m, _ = menuPress(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("spellcatch", 90, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, modelConfig, testLessons)
	if m.items[0].HighScore != 90 {
		t.Errorf("got high score %d, expected 90", m.items[0].HighScore)
	}
	if !strings.Contains(m.View(), "best 90") {
		t.Error("menu should show the best score")
	}
}

func TestCreateGameUsesLesson(t *testing.T) {
	game, err := CreateGame("spellcatch", "animals")
	if err != nil {
		t.Fatalf("CreateGame() failed: %v", err)
	}
	game.Reset(modelConfig)

	sc, ok := game.(*spellcatch.Game)
	if !ok {
		t.Fatalf("got %T, expected *spellcatch.Game", game)
	}
	if got := sc.Snapshot().Word; got != "fox" {
		t.Errorf("first word = %q, expected fox", got)
	}

	if _, err := CreateGame("missing", ""); err == nil {
		t.Error("unknown game should fail")
	}
}

func sessionPress(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, modelConfig, testLessons)
	if m.SessionID() == "" {
		t.Fatal("session should have an id")
	}

	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("picking a lesson should start the game")
	}
	if m.gameModel.SessionID() != m.SessionID() {
		t.Error("games should share the session id")
	}
	if !strings.Contains(m.View(), "Spell:") {
		t.Error("game HUD not rendered")
	}

	m = sessionPress(t, m, runeKey('p'))
	m = sessionPress(t, m, TickMsg{Time: time.Now(), LoopID: m.gameModel.loopID})
	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("esc while paused should return to the menu")
	}

	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	m = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}
