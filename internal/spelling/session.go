package spelling

import (
	"strings"
	"unicode"
)

// Status is the state of the current round.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusWin
	StatusLose
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusWin:
		return "win"
	case StatusLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Session is the aggregate holding all mutable game state for one play
// session. Only the Engine that owns it mutates it.
type Session struct {
	word   *Word
	cursor int
	lives  int
	lane   int
	tokens []Token
	status Status
	round  int
	score  int
	muted  bool

	lanes      int
	startLives int
	startLane  int
}

// NewSession creates a session in its initial state with no word set.
func NewSession(t Tuning) *Session {
	s := &Session{
		lanes:      t.Lanes,
		startLives: t.StartLives,
		startLane:  t.StartLane,
	}
	s.Reset()
	return s
}

// Reset restores lives, lane, tokens, cursor and status to their initial
// values. Score and the round counter belong to the caller's round tracking
// and are kept.
func (s *Session) Reset() {
	s.cursor = 0
	s.lives = s.startLives
	s.lane = s.startLane
	s.tokens = nil
	s.status = StatusPlaying
}

// NextWord swaps in a new target word and starts a new round.
func (s *Session) NextWord(w *Word) {
	s.word = w
	s.cursor = 0
	s.tokens = nil
	s.round++
	s.status = StatusPlaying
}

// Word returns the current target, or nil before the first round.
func (s *Session) Word() *Word { return s.word }

// Cursor returns the index of the next letter to catch.
func (s *Session) Cursor() int { return s.cursor }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Lane returns the player's lane.
func (s *Session) Lane() int { return s.lane }

// Status returns the round status.
func (s *Session) Status() Status { return s.status }

// Round returns how many words have been started.
func (s *Session) Round() int { return s.round }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Muted returns the mute flag.
func (s *Session) Muted() bool { return s.muted }

// Tokens returns a copy of the tokens on the field.
func (s *Session) Tokens() []Token {
	return copyTokens(s.tokens)
}

// TargetLetter returns the uppercase letter at the cursor, or Blank when
// there is no word or it is already spelled.
func (s *Session) TargetLetter() rune {
	if s.word == nil {
		return Blank
	}
	return unicode.ToUpper(s.word.At(s.cursor))
}

// WordComplete reports whether every letter of the word has been caught.
func (s *Session) WordComplete() bool {
	return s.word != nil && s.cursor >= s.word.Len()
}

// Progress returns the word with spelled letters revealed and the rest
// masked, e.g. "C A _" for "cat" with two letters caught.
func (s *Session) Progress() string {
	if s.word == nil {
		return ""
	}
	parts := make([]string, s.word.Len())
	for i := range parts {
		if i < s.cursor {
			parts[i] = string(unicode.ToUpper(s.word.At(i)))
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}

// setLane moves the player, clamped to the lane range.
func (s *Session) setLane(lane int) {
	s.lane = max(0, min(lane, s.lanes-1))
}

// loseLife decrements lives without going below zero.
func (s *Session) loseLife() {
	if s.lives > 0 {
		s.lives--
	}
}

func (s *Session) clearTokens() {
	s.tokens = s.tokens[:0]
}

// Snapshot is a copy of the session state, safe to keep and inspect.
type Snapshot struct {
	Word     string
	Cursor   int
	Lives    int
	Lane     int
	Tokens   []Token
	Status   Status
	Round    int
	Score    int
	Muted    bool
	Progress string
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Cursor:   s.cursor,
		Lives:    s.lives,
		Lane:     s.lane,
		Tokens:   s.Tokens(),
		Status:   s.status,
		Round:    s.round,
		Score:    s.score,
		Muted:    s.muted,
		Progress: s.Progress(),
	}
	if s.word != nil {
		snap.Word = s.word.Text()
	}
	return snap
}
