package schedule

import (
	"testing"
	"time"
)

func TestManualRunsInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(15 * time.Millisecond)
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("after 15ms got %v, expected [a]", got)
	}

	m.Advance(15 * time.Millisecond)
	if len(got) != 3 || got[1] != "b" || got[2] != "c" {
		t.Errorf("after 30ms got %v, expected [a b c]", got)
	}
	if m.Now() != 30*time.Millisecond {
		t.Errorf("Now() = %v, expected 30ms", m.Now())
	}
}

func TestManualTiesAreFIFO(t *testing.T) {
	m := NewManual()
	var got []int
	for i := range 5 {
		m.AfterFunc(5*time.Millisecond, func() { got = append(got, i) })
	}
	m.Advance(5 * time.Millisecond)

	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, expected scheduling order", got)
		}
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	ran := false
	timer := m.AfterFunc(10*time.Millisecond, func() { ran = true })

	if !timer.Stop() {
		t.Error("Stop() on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	m.Advance(time.Second)
	if ran {
		t.Error("stopped callback should not run")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestManualStopAfterFire(t *testing.T) {
	m := NewManual()
	timer := m.AfterFunc(time.Millisecond, func() {})
	m.Advance(time.Millisecond)

	if timer.Stop() {
		t.Error("Stop() after the callback ran should return false")
	}
}

func TestManualChainedCallbacks(t *testing.T) {
	// A self-rescheduling callback behaves like a fixed-rate ticker.
	m := NewManual()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(16*time.Millisecond, tick)
	}
	m.AfterFunc(16*time.Millisecond, tick)

	m.Advance(160 * time.Millisecond)
	if ticks != 10 {
		t.Errorf("ticks = %d, expected 10", ticks)
	}
}

func TestManualStopFromCallback(t *testing.T) {
	m := NewManual()
	ran := false
	var later Timer
	m.AfterFunc(time.Millisecond, func() { later.Stop() })
	later = m.AfterFunc(2*time.Millisecond, func() { ran = true })

	m.Advance(10 * time.Millisecond)
	if ran {
		t.Error("callback cancelled by an earlier callback should not run")
	}
}

func TestManualNextDue(t *testing.T) {
	m := NewManual()
	if _, ok := m.NextDue(); ok {
		t.Error("NextDue() on empty scheduler should report nothing pending")
	}

	m.AfterFunc(40*time.Millisecond, func() {})
	m.Advance(10 * time.Millisecond)

	d, ok := m.NextDue()
	if !ok || d != 30*time.Millisecond {
		t.Errorf("NextDue() = %v, %v, expected 30ms, true", d, ok)
	}
}
