package schedule

import (
	"container/heap"
	"time"
)

// Manual is a virtual-time scheduler. Time only moves when Advance is called,
// and callbacks run on the caller's goroutine. Not safe for concurrent use.
type Manual struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// AfterFunc schedules fn to run once virtual time has advanced by d.
// Negative delays are treated as zero.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{
		owner: m,
		due:   m.now + d,
		seq:   m.seq,
		fn:    fn,
	}
	heap.Push(&m.queue, t)
	return t
}

// Advance moves virtual time forward by d, running every callback that
// becomes due in due-time order. Callbacks scheduled while advancing run in
// the same call if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for len(m.queue) > 0 {
		next := m.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&m.queue)
		m.now = next.due
		next.fired = true
		next.fn()
	}
	m.now = target
}

// Pending returns the number of callbacks waiting to run.
func (m *Manual) Pending() int {
	return len(m.queue)
}

// NextDue returns the delay until the earliest pending callback.
// ok is false when nothing is pending.
func (m *Manual) NextDue() (d time.Duration, ok bool) {
	if len(m.queue) == 0 {
		return 0, false
	}
	return m.queue[0].due - m.now, true
}

type manualTimer struct {
	owner *Manual
	due   time.Duration
	seq   uint64
	index int
	fn    func()
	fired bool
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.index < 0 {
		return false
	}
	heap.Remove(&t.owner.queue, t.index)
	return true
}

// timerQueue orders timers by due time, then by scheduling order.
type timerQueue []*manualTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*manualTimer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
