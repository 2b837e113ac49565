package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spellcatch/internal/words"
)

var flagShowWords bool

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the word lessons",
	Long: `Shows the built-in lessons and any lessons found in --lessons.
A lesson file in that directory replaces a built-in lesson with the same id.

Lesson file format:
  id: animals
  title: Animals
  words:
    - fox
    - owl

Examples:
  spellcatch lessons
  spellcatch lessons --words
  spellcatch lessons --lessons ./my-lessons`,
	Run: runLessons,
}

func init() {
	lessonsCmd.Flags().BoolVar(&flagShowWords, "words", false, "Print the words of every lesson")
}

func runLessons(_ *cobra.Command, _ []string) {
	lib, err := words.Load(flagLessonDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lessons := lib.List()
	maxIDLen := 2 // "ID" header
	for _, l := range lessons {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Words", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, l := range lessons {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, l.ID, len(l.Words), l.Title)
		if flagShowWords {
			fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "", "", strings.Join(l.Words, " "))
		}
	}

	fmt.Println()
	fmt.Println("Run 'spellcatch play --lesson <id>' to practice a lesson.")
}
