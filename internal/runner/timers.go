package runner

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

type timer struct {
	id  TimerID
	gen uint64
	at  time.Duration
	fn  func()
}

// Timers is a session-owned registry of deferred callbacks keyed by the
// session clock. Every callback is tagged with the registry generation;
// Reset bumps the generation so nothing scheduled by a previous run can
// touch the next one.
type Timers struct {
	gen     uint64
	nextID  TimerID
	pending []timer
}

// NewTimers creates an empty registry.
func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn to run once the clock reaches now+d.
func (t *Timers) After(now, d time.Duration, fn func()) TimerID {
	t.nextID++
	t.pending = append(t.pending, timer{
		id:  t.nextID,
		gen: t.gen,
		at:  now + d,
		fn:  fn,
	})
	return t.nextID
}

// Cancel removes a pending callback. It reports whether anything was removed.
func (t *Timers) Cancel(id TimerID) bool {
	for i, tm := range t.pending {
		if tm.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance runs every callback due at or before now, earliest first.
// Callbacks may schedule new timers; those are picked up if already due.
// It returns the number of callbacks that ran.
func (t *Timers) Advance(now time.Duration) int {
	fired := 0
	for {
		due := t.takeDue(now)
		if len(due) == 0 {
			return fired
		}
		for _, tm := range due {
			// A callback earlier in this batch may have reset the registry
			if tm.gen != t.gen {
				continue
			}
			tm.fn()
			fired++
		}
	}
}

// takeDue removes and returns due timers ordered by deadline then id.
func (t *Timers) takeDue(now time.Duration) []timer {
	var due []timer
	kept := t.pending[:0]
	for _, tm := range t.pending {
		if tm.at <= now {
			due = append(due, tm)
		} else {
			kept = append(kept, tm)
		}
	}
	t.pending = kept
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].id < due[j].id
	})
	return due
}

// Reset drops every pending callback and invalidates any in flight.
func (t *Timers) Reset() {
	t.gen++
	t.pending = t.pending[:0]
}

// Len returns the number of pending callbacks.
func (t *Timers) Len() int {
	return len(t.pending)
}

// Generation returns the current registry generation.
func (t *Timers) Generation() uint64 {
	return t.gen
}
