package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spellcatch/internal/core"
	"github.com/vovakirdan/spellcatch/internal/registry"
	"github.com/vovakirdan/spellcatch/internal/storage"
)

// wordCounter is implemented by games that count spelled words.
type wordCounter interface {
	WordsSpelled() int
}

// lessonChooser is implemented by games that play a selectable lesson.
type lessonChooser interface {
	UseLesson(id string)
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  string
	loopID     int64
	muted      bool // Mute preference as last read from or written to the store
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone runs quit the program on Back
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for game. sessionID tags every stored round;
// empty generates a new one.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		sessionID:  sessionID,
		loopID:     nextLoopID(),
	}
	if store != nil {
		if muted, err := store.Muted(); err == nil {
			m.muted = muted
		}
	}
	return m
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.TickRate, m.loopID)
}

// resetGame restarts the game and applies the stored mute preference.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false

	if pref, ok := m.game.(registry.MutePreference); ok && m.store != nil {
		pref.SetMuted(m.muted)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.LoopID != m.loopID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for a key in the current input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize refits the game to the new terminal size.
// The game restarts, since its layout depends on the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.persistRounds()
		m.resetGame()
	}

	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.persistRounds()
	m.persistMute()

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.loopID)
}

// saveScore records the final score. Best effort: a failing store never
// interrupts play.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	words := 0
	if wc, ok := m.game.(wordCounter); ok {
		words = wc.WordsSpelled()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score, words)
}

// persistRounds stores the rounds the game finished since the last frame.
func (m *Model) persistRounds() {
	reporter, ok := m.game.(registry.RoundReporter)
	if !ok {
		return
	}
	rounds := reporter.DrainRounds()
	if m.store == nil {
		return
	}
	for _, r := range rounds {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRound(storage.Round{
			SessionID: m.sessionID,
			GameID:    m.game.ID(),
			Lesson:    r.Lesson,
			Word:      r.Word,
			Won:       r.Won,
			Mistakes:  r.Mistakes,
			Score:     r.Score,
		})
	}
}

// persistMute remembers the mute toggle for the next session.
func (m *Model) persistMute() {
	pref, ok := m.game.(registry.MutePreference)
	if !ok || m.store == nil || pref.Muted() == m.muted {
		return
	}
	if err := m.store.SetMuted(pref.Muted()); err == nil {
		m.muted = pref.Muted()
	}
}

// saveScreenshot writes the current screen to ~/.spellcatch/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".spellcatch", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SessionID returns the id stored with every round of this model.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run plays game in the terminal until the user quits or goes back.
// It reports whether the user asked to go back to a menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, sessionID)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
