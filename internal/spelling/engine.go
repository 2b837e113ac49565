package spelling

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spellcatch/internal/schedule"
)

// Engine owns a Session and drives it on a Scheduler.
// All methods must be called from the scheduler's execution context; the
// engine does no locking of its own.
type Engine struct {
	session  *Session
	tuning   Tuning
	sched    schedule.Scheduler
	rng      *rand.Rand
	listener Listener

	speed         float64
	viewportWidth float64

	tickTimer schedule.Timer // Set while the tick loop is running
	tickEpoch uint64         // Bumped whenever the tick loop is started or cancelled
	waveTimer schedule.Timer // Set while a wave spawn is pending
}

// NewEngine creates an engine with no word set.
// The seed makes wave generation reproducible.
func NewEngine(sched schedule.Scheduler, tuning Tuning, seed int64) *Engine {
	return &Engine{
		session:  NewSession(tuning),
		tuning:   tuning,
		sched:    sched,
		rng:      rand.New(rand.NewSource(seed)),
		listener: NopListener{},
		speed:    tuning.Speed,
	}
}

// SetListener registers the observer. Nil removes it.
func (e *Engine) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	e.listener = l
}

// SetViewportWidth sets the visible width in position units. Waves spawn one
// token length past it. Zero or less falls back to the default spawn point.
func (e *Engine) SetViewportWidth(w float64) {
	e.viewportWidth = w
}

// SetSpeed overrides the per-tick token speed, e.g. for difficulty scaling.
// Non-positive values are ignored.
func (e *Engine) SetSpeed(v float64) {
	if v > 0 {
		e.speed = v
	}
}

// Speed returns the current per-tick token speed.
func (e *Engine) Speed() float64 {
	return e.speed
}

// SetMuted sets the mute flag the host reads for narration and persistence.
func (e *Engine) SetMuted(muted bool) {
	e.session.muted = muted
}

// Start generates the first wave and begins ticking. It does nothing if the
// engine is already running, no word is set, or the round is over. A paused
// round is resumed.
func (e *Engine) Start() {
	if e.Running() {
		return
	}
	s := e.session
	switch s.status {
	case StatusPaused:
		e.Resume()
		return
	case StatusWin, StatusLose:
		return
	}
	if s.word == nil {
		return
	}

	e.cancelWave()
	e.generateWave()
	e.scheduleTick()
}

// Pause halts ticking. Calling it when not playing has no effect.
func (e *Engine) Pause() {
	if e.session.status != StatusPlaying {
		return
	}
	e.session.status = StatusPaused
	e.cancelTick()
}

// Resume restarts ticking after Pause. Time spent paused is not replayed.
func (e *Engine) Resume() {
	if e.session.status != StatusPaused {
		return
	}
	e.session.status = StatusPlaying
	if !e.Running() {
		e.scheduleTick()
	}
}

// Stop halts ticking and cancels any pending wave.
func (e *Engine) Stop() {
	e.cancelTick()
	e.cancelWave()
}

// MoveUp moves the player one lane up (towards lane 0).
func (e *Engine) MoveUp() {
	e.session.setLane(e.session.lane - 1)
}

// MoveDown moves the player one lane down.
func (e *Engine) MoveDown() {
	e.session.setLane(e.session.lane + 1)
}

// NextWord stops the engine and starts a new round with w.
// Call Start to begin playing it. Lives are kept, so after a loss call Reset
// as well or the new round starts with none left.
func (e *Engine) NextWord(w *Word) {
	e.Stop()
	e.session.NextWord(w)
}

// Reset stops the engine and restores lives, lane and tokens. The word and
// score are kept.
func (e *Engine) Reset() {
	e.Stop()
	e.session.Reset()
}

// Running reports whether the tick loop is active.
func (e *Engine) Running() bool {
	return e.tickTimer != nil
}

// Lane returns the player's lane.
func (e *Engine) Lane() int { return e.session.lane }

// Status returns the round status.
func (e *Engine) Status() Status { return e.session.status }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.session.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.session.lives }

// Muted returns the mute flag.
func (e *Engine) Muted() bool { return e.session.muted }

// Round returns the round counter.
func (e *Engine) Round() int { return e.session.round }

// Cursor returns how many letters of the word have been caught.
func (e *Engine) Cursor() int { return e.session.cursor }

// Word returns the current word text, or "" before the first round.
func (e *Engine) Word() string {
	if e.session.word == nil {
		return ""
	}
	return e.session.word.Text()
}

// TargetLetter returns the uppercase letter to catch next.
func (e *Engine) TargetLetter() rune { return e.session.TargetLetter() }

// Progress returns the masked spelling progress.
func (e *Engine) Progress() string { return e.session.Progress() }

// Tokens returns a copy of the tokens on the field.
func (e *Engine) Tokens() []Token { return e.session.Tokens() }

// WavePending reports whether a wave spawn is scheduled.
func (e *Engine) WavePending() bool { return e.waveTimer != nil }

// Tuning returns the engine's tuning.
func (e *Engine) Tuning() Tuning { return e.tuning }

// Snapshot returns a copy of the session state.
func (e *Engine) Snapshot() Snapshot {
	return e.session.Snapshot()
}

func (e *Engine) scheduleTick() {
	e.tickEpoch++
	e.tickTimer = e.sched.AfterFunc(e.tuning.TickInterval, e.tick)
}

func (e *Engine) cancelTick() {
	e.tickEpoch++
	if e.tickTimer != nil {
		e.tickTimer.Stop()
		e.tickTimer = nil
	}
}

// scheduleWave replaces any pending wave with one due after d.
func (e *Engine) scheduleWave(d time.Duration) {
	e.cancelWave()
	e.waveTimer = e.sched.AfterFunc(d, e.spawnWave)
}

func (e *Engine) cancelWave() {
	if e.waveTimer != nil {
		e.waveTimer.Stop()
		e.waveTimer = nil
	}
}

// spawnWave is the delayed wave callback. The round may have ended or been
// paused since it was scheduled, so generateWave re-checks the status.
func (e *Engine) spawnWave() {
	e.waveTimer = nil
	e.generateWave()
}
