// Package timer runs delayed callbacks from a frame loop.
//
// A Queue never starts goroutines. The host calls Run once per frame and every
// due callback runs right there, one after another.
package timer

import (
	"sort"
	"time"
)

// DefaultMaxPerRun bounds the callbacks a single Run executes.
const DefaultMaxPerRun = 8

type entry struct {
	due time.Time
	seq int
	fn  func()
}

// Queue is a single-goroutine timer queue. The zero value is not usable; use
// NewQueue.
type Queue struct {
	now       func() time.Time
	maxPerRun int

	entries []entry
	seq     int
	firing  time.Time // due time of the running callback
}

// NewQueue returns a queue reading the time from now. A nil now uses time.Now.
func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now, maxPerRun: DefaultMaxPerRun}
}

// After schedules fn to run d from now. Called from inside a running
// callback, d counts from that callback's due time, so a callback that keeps
// rescheduling itself holds its rate even when frames are slower than d.
func (q *Queue) After(d time.Duration, fn func()) {
	base := q.firing
	if base.IsZero() {
		base = q.now()
	}
	q.seq++
	q.entries = append(q.entries, entry{due: base.Add(d), seq: q.seq, fn: fn})
	sort.Slice(q.entries, func(i, j int) bool {
		a, b := q.entries[i], q.entries[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
}

// Run executes due callbacks in due order, at most maxPerRun of them. When the
// queue is still behind afterwards the backlog is moved up to now rather than
// replayed, and Run reports the number of callbacks executed.
func (q *Queue) Run() int {
	now := q.now()
	ran := 0
	for ran < q.maxPerRun && len(q.entries) > 0 && !q.entries[0].due.After(now) {
		e := q.entries[0]
		q.entries = q.entries[1:]

		q.firing = e.due
		e.fn()
		q.firing = time.Time{}
		ran++
	}
	for i := range q.entries {
		if q.entries[i].due.Before(now) {
			q.entries[i].due = now
		}
	}
	return ran
}

// Len reports how many callbacks are waiting.
func (q *Queue) Len() int {
	return len(q.entries)
}
