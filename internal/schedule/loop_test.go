package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLoopRunsTimerCallbacks(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(context.Background())
	defer l.Close()

	fired := make(chan struct{})
	l.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer callback did not run")
	}
}

func TestLoopSerializesCallbacks(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(context.Background())
	defer l.Close()

	var inFlight, maxInFlight atomic.Int32
	counter := 0
	done := make(chan struct{})
	const n = 50

	for i := range n {
		l.AfterFunc(time.Duration(i%5)*time.Millisecond, func() {
			if v := inFlight.Add(1); v > maxInFlight.Load() {
				maxInFlight.Store(v)
			}
			counter++
			inFlight.Add(-1)
			if counter == n {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callbacks did not finish")
	}
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestLoopStoppedTimerNeverRuns(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(context.Background())
	defer l.Close()

	var ran atomic.Bool
	stopped := make(chan bool, 1)
	require.True(t, l.Do(func() {
		timer := l.AfterFunc(20*time.Millisecond, func() { ran.Store(true) })
		stopped <- timer.Stop()
	}))

	assert.True(t, <-stopped)
	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestLoopDoAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(context.Background())
	l.Close()

	assert.False(t, l.Do(func() {}))
	select {
	case <-l.Done():
	default:
		t.Fatal("Done() should be closed after Close()")
	}
}

func TestLoopCloseCancelsPendingTimers(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(context.Background())
	var ran atomic.Bool
	l.AfterFunc(time.Hour, func() { ran.Store(true) })
	l.Close()

	assert.False(t, ran.Load())
}

func TestLoopStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(ctx)
	cancel()

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after context cancellation")
	}
	l.Close()
}
