// spellcatch is a terminal spelling game: letters fly in along five lanes
// and the player steers into the next letter of the target word.
//
// Usage:
//
//	spellcatch list              - List available games
//	spellcatch lessons           - List word lessons
//	spellcatch play [game]       - Play a game
//	spellcatch menu              - Pick games and lessons interactively
//	spellcatch serve             - Start SSH server for remote play
//	spellcatch scores <game>     - Show high scores and hardest words
//	spellcatch autoplay          - Let the autopilot play in real time
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.spellcatch/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--lessons <dir>       - Extra lesson directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spellcatch/internal/games/spellcatch"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLessonDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spellcatch",
	Short: "Spellcatch - catch the letters, spell the word",
	Long: `Spellcatch is a terminal spelling game. Letters fly in along five
lanes; steer into the next letter of the word before it passes you.
A wrong letter costs a life.

Available commands:
  list      - Show all available games
  lessons   - Show the word lessons
  play      - Play a game directly
  menu      - Interactive game and lesson picker
  serve     - Start SSH server for remote play
  scores    - View high scores and the hardest words
  autoplay  - Watch the autopilot play

Examples:
  spellcatch play
  spellcatch play --lesson animals
  spellcatch play spellcatch_endless --difficulty hard
  spellcatch menu
  spellcatch serve --ssh :2222
  spellcatch autoplay --accuracy 0.8`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		spellcatch.SetConfigPath(flagConfig)
		spellcatch.SetDifficultyPreset(flagDifficulty)
		spellcatch.SetLessonDir(flagLessonDir)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spellcatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLessonDir, "lessons", "", "Directory with extra lesson YAML files")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
}
