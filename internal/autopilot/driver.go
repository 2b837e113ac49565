package autopilot

import (
	"sync"
	"time"

	"github.com/vovakirdan/spellcatch/internal/registry"
	"github.com/vovakirdan/spellcatch/internal/schedule"
	"github.com/vovakirdan/spellcatch/internal/spelling"
	"github.com/vovakirdan/spellcatch/internal/words"
)

// Options configure a Driver.
type Options struct {
	Lesson     string        // Lesson id recorded with every round
	MaxWords   int           // Stop after this many rounds; 0 plays until the deck or lives run out
	ClearDelay time.Duration // Pause between a spelled word and the next
	CarryLives bool          // Keep lives between words instead of resetting them

	// Pace, when set, picks the token speed before every word from the
	// score so far and the number of rounds played.
	Pace func(score, rounds int) float64
}

// Summary is the outcome of a finished run.
type Summary struct {
	Words     int // Words spelled
	Mistakes  int // Wrong catches over the whole run
	Score     int
	Lives     int
	Completed bool // The deck ran out before the lives did
	Rounds    []registry.Round
}

// Driver deals words from a deck into the engine, one round after another.
// Install it as an engine listener; all of its methods except Done and
// Summary must run on the engine's scheduler.
type Driver struct {
	spelling.NopListener

	engine *spelling.Engine
	sched  schedule.Scheduler
	deck   *words.Deck
	opts   Options

	mistakes int // In the current round
	summary  Summary

	done     chan struct{}
	finished sync.Once
}

// NewDriver creates a driver. sched must be the engine's scheduler.
func NewDriver(engine *spelling.Engine, sched schedule.Scheduler, deck *words.Deck, opts Options) *Driver {
	return &Driver{
		engine: engine,
		sched:  sched,
		deck:   deck,
		opts:   opts,
		done:   make(chan struct{}),
	}
}

// Start deals the first word.
func (d *Driver) Start() {
	d.next()
}

// Done is closed when the run is over.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Summary returns the run's outcome. Only valid after Done is closed.
func (d *Driver) Summary() Summary {
	return d.summary
}

func (d *Driver) next() {
	if d.opts.MaxWords > 0 && len(d.summary.Rounds) >= d.opts.MaxWords {
		d.finish(false)
		return
	}
	word, ok := d.deck.Next()
	if !ok {
		d.finish(true)
		return
	}

	d.mistakes = 0
	if d.opts.Pace != nil {
		d.engine.SetSpeed(d.opts.Pace(d.engine.Score(), len(d.summary.Rounds)))
	}
	d.engine.NextWord(spelling.NewWord(word))
	if !d.opts.CarryLives {
		d.engine.Reset()
	}
	d.engine.Start()
}

func (d *Driver) finish(completed bool) {
	d.finished.Do(func() {
		d.engine.Stop()
		d.summary.Score = d.engine.Score()
		d.summary.Lives = d.engine.Lives()
		d.summary.Completed = completed
		close(d.done)
	})
}

func (d *Driver) record(won bool) {
	d.summary.Rounds = append(d.summary.Rounds, registry.Round{
		Lesson:   d.opts.Lesson,
		Word:     d.engine.Word(),
		Won:      won,
		Mistakes: d.mistakes,
		Score:    d.engine.Score(),
	})
}

// WrongLetter counts a mistake.
func (d *Driver) WrongLetter(rune, rune) {
	d.mistakes++
	d.summary.Mistakes++
}

// WordComplete records the round and deals the next word after the clear delay.
func (d *Driver) WordComplete(string) {
	d.summary.Words++
	d.record(true)
	d.sched.AfterFunc(d.opts.ClearDelay, d.next)
}

// GameOver records the lost round and ends the run.
func (d *Driver) GameOver() {
	d.record(false)
	d.finish(false)
}
