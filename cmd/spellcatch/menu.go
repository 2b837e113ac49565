package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spellcatch/internal/platform/tui"
	"github.com/vovakirdan/spellcatch/internal/storage"
	"github.com/vovakirdan/spellcatch/internal/words"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game and lesson from a menu",
	Long: `Start spellcatch in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. The campaign asks for
a lesson; endless mode mixes the words of every lesson. After a game you
return to the menu. All games of one menu run share a play session, so
their rounds are grouped in the database.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc          - Back
  Q            - Quit

Examples:
  spellcatch menu
  spellcatch menu --fps 30
  spellcatch menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger("spellcatch")
	checkSettings(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	lib, err := words.Load(flagLessonDir)
	if err != nil {
		lib, _ = words.Load("")
	}

	cfg := runtimeConfig()
	sessionID := storage.NewSessionID()

	for {
		menuResult, err := tui.RunMenu(store, cfg, lib.List())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := tui.CreateGame(menuResult.GameID, menuResult.Lesson)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, sessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
