package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spellcatch/internal/autopilot"
	"github.com/vovakirdan/spellcatch/internal/config"
	"github.com/vovakirdan/spellcatch/internal/schedule"
	"github.com/vovakirdan/spellcatch/internal/spelling"
	"github.com/vovakirdan/spellcatch/internal/storage"
	"github.com/vovakirdan/spellcatch/internal/words"
)

var (
	flagAccuracy float64
	flagMaxWords int
	flagEndless  bool
	flagSave     bool
	flagVerbose  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the autopilot play in real time",
	Long: `Run the game engine headless on a real-time clock while an autopilot
steers. The autopilot aims at the right letter with the given accuracy.
Every engine event is logged; a summary is printed at the end.

Examples:
  spellcatch autoplay
  spellcatch autoplay --lesson animals --accuracy 0.7
  spellcatch autoplay --endless --max-words 20 --save
  spellcatch autoplay --verbose --seed 42`,
	Run: runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagLesson, "lesson", "", "Lesson id to play (default from config)")
	autoplayCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.9, "Chance of aiming at the right letter, 0 to 1")
	autoplayCmd.Flags().IntVar(&flagMaxWords, "max-words", 0, "Stop after this many words (0 = no limit)")
	autoplayCmd.Flags().BoolVar(&flagEndless, "endless", false, "Draw random words from every lesson")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Store the score and rounds in the database")
	autoplayCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Also log every wave")
}

func runAutoplay(_ *cobra.Command, _ []string) {
	logger := newLogger("autoplay")
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadSpellcatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplySpellcatchPreset(&cfg, preset)
	}

	lessonDir := cfg.Words.Dir
	if flagLessonDir != "" {
		lessonDir = flagLessonDir
	}
	lib, err := words.Load(lessonDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameID := "spellcatch"
	var lesson words.Lesson
	var deck *words.Deck
	if flagEndless {
		gameID = "spellcatch_endless"
		lesson = words.Lesson{ID: "all", Title: "All Lessons", Words: lib.All()}
		deck = words.NewDeck(lesson.Words, words.ModeEndless, seed)
	} else {
		id := cfg.Words.Lesson
		if flagLesson != "" {
			id = flagLesson
		}
		var ok bool
		if lesson, ok = lib.Get(id); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown lesson %q\n", id)
			os.Exit(1)
		}
		deck = words.NewDeck(lesson.Words, words.ModeCampaign, 0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := schedule.NewLoop(ctx)
	defer loop.Close()

	engine := spelling.NewEngine(loop, cfg.Tuning(), seed)
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	engine.SetSpeed(difficulty.Speed(cfg.Engine.Speed, 0, 0))

	pilot := autopilot.NewPilot(engine, flagAccuracy, seed+1)
	opts := autopilot.Options{
		Lesson:     lesson.ID,
		MaxWords:   flagMaxWords,
		ClearDelay: cfg.RoundClearDelay(),
		CarryLives: cfg.Gameplay.CarryLives,
	}
	if difficulty.IsEnabled() {
		opts.Pace = func(score, rounds int) float64 {
			return difficulty.Speed(cfg.Engine.Speed, score, rounds)
		}
	}
	driver := autopilot.NewDriver(engine, loop, deck, opts)
	engine.SetListener(spelling.Listeners{
		&eventLogger{logger: logger, engine: engine},
		pilot,
		driver,
	})

	logger.Info("starting", "lesson", lesson.Title, "words", len(lesson.Words), "accuracy", flagAccuracy, "seed", seed, "progression", difficulty.IsEnabled())
	loop.Do(driver.Start)

	select {
	case <-driver.Done():
	case <-ctx.Done():
		logger.Warn("interrupted")
		return
	}

	summary := driver.Summary()
	printSummary(summary, pilot.Misses())

	if flagSave {
		saveRun(logger, gameID, summary)
	}
}

func printSummary(s autopilot.Summary, misses int) {
	result := "out of lives"
	switch {
	case s.Completed:
		result = "lesson complete"
	case s.Lives > 0:
		result = "word limit reached"
	}

	fmt.Println()
	fmt.Printf("Result:   %s\n", result)
	fmt.Printf("Score:    %d\n", s.Score)
	fmt.Printf("Words:    %d of %d played\n", s.Words, len(s.Rounds))
	fmt.Printf("Mistakes: %d (%d waves aimed wrong)\n", s.Mistakes, misses)
	fmt.Printf("Lives:    %d\n", s.Lives)
}

func saveRun(logger *log.Logger, gameID string, s autopilot.Summary) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	sessionID := storage.NewSessionID()
	for _, r := range s.Rounds {
		if _, err := store.SaveRound(storage.Round{
			SessionID: sessionID,
			GameID:    gameID,
			Lesson:    r.Lesson,
			Word:      r.Word,
			Won:       r.Won,
			Mistakes:  r.Mistakes,
			Score:     r.Score,
		}); err != nil {
			logger.Error("could not save round", "word", r.Word, "error", err)
		}
	}
	if s.Score > 0 {
		if _, err := store.SaveScore(gameID, s.Score, s.Words); err != nil {
			logger.Error("could not save score", "error", err)
			return
		}
	}
	logger.Info("saved", "session", sessionID, "rounds", len(s.Rounds))
}

// eventLogger logs engine events. It runs on the loop goroutine.
type eventLogger struct {
	spelling.NopListener
	logger *log.Logger
	engine *spelling.Engine
	wave   int
}

func (l *eventLogger) TokensUpdated(tokens []spelling.Token) {
	// Logged once per wave, as it spawns. No viewport is set, so waves
	// spawn at the default spawn position.
	if len(tokens) == 0 || tokens[0].X != l.engine.Tuning().DefaultSpawnX {
		return
	}
	l.wave++
	letters := make([]string, len(tokens))
	for i, tok := range tokens {
		letters[i] = string(tok.Letter)
	}
	l.logger.Debug("wave", "n", l.wave, "letters", letters, "target", string(l.engine.TargetLetter()))
}

func (l *eventLogger) CorrectLetter(letter rune) {
	l.logger.Info("caught", "letter", string(letter), "progress", l.engine.Progress())
}

func (l *eventLogger) WrongLetter(actual, expected rune) {
	l.logger.Warn("wrong letter", "caught", string(actual), "expected", string(expected))
}

func (l *eventLogger) LivesChanged(lives int) {
	l.logger.Info("lives", "left", lives)
}

func (l *eventLogger) WordComplete(word string) {
	l.logger.Info("word complete", "word", word, "score", l.engine.Score())
}

func (l *eventLogger) GameOver() {
	l.logger.Error("game over", "word", l.engine.Word(), "score", l.engine.Score())
}
