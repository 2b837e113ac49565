// Package spelling implements the letter-catching simulation: letter tokens
// slide along horizontal lanes toward a fixed collision zone, and the player
// steers between lanes to catch the next letter of a target word.
//
// The package is pure game logic. It never renders, plays audio or touches
// storage; time comes from an injected schedule.Scheduler and everything
// observable is pushed to a Listener.
package spelling

import "strings"

// Blank is returned for letter lookups outside the word.
const Blank = ' '

// Word is the target being spelled. It is immutable and always lowercase.
type Word struct {
	text  string
	runes []rune
}

// NewWord creates a word target, folding it to lowercase.
func NewWord(s string) *Word {
	lower := strings.ToLower(s)
	return &Word{
		text:  lower,
		runes: []rune(lower),
	}
}

// Text returns the lowercase word.
func (w *Word) Text() string {
	return w.text
}

// Len returns the number of letters.
func (w *Word) Len() int {
	return len(w.runes)
}

// At returns the letter at index i, or Blank if i is out of range.
func (w *Word) At(i int) rune {
	if i < 0 || i >= len(w.runes) {
		return Blank
	}
	return w.runes[i]
}
