package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spellcatch/internal/config"
	"github.com/vovakirdan/spellcatch/internal/core"
	"github.com/vovakirdan/spellcatch/internal/platform/tui"
	"github.com/vovakirdan/spellcatch/internal/registry"
	"github.com/vovakirdan/spellcatch/internal/storage"
	"github.com/vovakirdan/spellcatch/internal/words"
)

var flagLesson string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: spellcatch).

Controls:
  Up/W/K     - Move one lane up
  Down/S/J   - Move one lane down
  P          - Pause
  M          - Mute word announcements
  R          - Restart (after game over)
  Esc/B      - Leave (while paused or after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Five lives, letters speed up slowly from the base speed
  normal - Letters speed up from a slightly faster start
  hard   - Two lives and a fast start
  fixed  - No progression, speed stays at the config value

Examples:
  spellcatch play
  spellcatch play --lesson colors
  spellcatch play spellcatch_endless
  spellcatch play --difficulty hard
  spellcatch play --config ./my-spellcatch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLesson, "lesson", "", "Lesson id for the campaign (see 'spellcatch lessons')")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "spellcatch"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spellcatch list' to see available games.")
		os.Exit(1)
	}

	logger := newLogger("spellcatch")
	checkSettings(logger)

	if flagLesson != "" {
		if lib, err := words.Load(flagLessonDir); err == nil {
			if _, ok := lib.Get(flagLesson); !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown lesson %q\n", flagLesson)
				fmt.Fprintln(os.Stderr, "Run 'spellcatch lessons' to see available lessons.")
				os.Exit(1)
			}
		}
	}

	game, err := tui.CreateGame(gameID, flagLesson)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), "")

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger creates a stderr logger in the style used across the commands.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// checkSettings warns about settings the game would silently replace
// with defaults.
func checkSettings(logger *log.Logger) {
	if _, err := config.LoadSpellcatch(flagConfig); err != nil {
		logger.Warn("config not usable, playing with defaults", "error", err)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		logger.Warn("unknown difficulty preset, ignoring it", "difficulty", flagDifficulty)
	}
	if flagLessonDir != "" {
		if _, err := words.Load(flagLessonDir); err != nil {
			logger.Warn("lesson directory not usable, using built-in lessons", "error", err)
		}
	}
}
