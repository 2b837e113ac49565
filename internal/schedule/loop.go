package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a real-time scheduler backed by a single goroutine.
// Timer callbacks and jobs submitted with Do are executed one at a time on
// that goroutine, so anything they touch needs no further locking.
// Stop a timer from the loop goroutine when its return value matters.
type Loop struct {
	jobs   chan func()
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	timers map[*loopTimer]struct{}
}

// NewLoop starts a loop that runs until ctx is cancelled or Close is called.
func NewLoop(ctx context.Context) *Loop {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{
		jobs:   make(chan func(), 64),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		timers: make(map[*loopTimer]struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.ctx.Done():
			return
		case fn := <-l.jobs:
			fn()
		}
	}
}

// Do queues fn to run on the loop goroutine.
// Returns false if the loop has shut down. Must not be called from inside a
// loop callback when the mailbox may be full.
func (l *Loop) Do(fn func()) bool {
	select {
	case <-l.ctx.Done():
		return false
	case l.jobs <- fn:
		return true
	}
}

// AfterFunc schedules fn to run on the loop goroutine after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{loop: l}

	// Held until the timer is tracked so an early fire cannot untrack first.
	l.mu.Lock()
	lt.timer = time.AfterFunc(d, func() {
		l.Do(func() {
			l.untrack(lt)
			if lt.stopped.Load() {
				return
			}
			lt.fired.Store(true)
			fn()
		})
	})
	l.timers[lt] = struct{}{}
	l.mu.Unlock()

	return lt
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Close stops the loop, cancels all pending timers and waits for the loop
// goroutine to exit.
func (l *Loop) Close() {
	l.cancel()
	<-l.done

	l.mu.Lock()
	pending := make([]*loopTimer, 0, len(l.timers))
	for t := range l.timers {
		pending = append(pending, t)
	}
	l.mu.Unlock()

	for _, t := range pending {
		t.Stop()
	}
}

func (l *Loop) untrack(t *loopTimer) {
	l.mu.Lock()
	delete(l.timers, t)
	l.mu.Unlock()
}

type loopTimer struct {
	loop    *Loop
	timer   *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.loop.untrack(t)
	t.timer.Stop()
	if t.fired.Load() {
		return false
	}
	return t.stopped.CompareAndSwap(false, true)
}
