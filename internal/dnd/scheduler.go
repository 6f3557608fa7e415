package dnd

import (
	"sort"
	"time"
)

// Handle identifies an armed timer. The zero Handle is never returned by Arm.
type Handle uint64

// Scheduler arms one-shot callbacks. Callbacks must run on the goroutine
// that processes UI events.
type Scheduler interface {
	Arm(delay time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// ManualScheduler is a Scheduler driven by an explicit clock.
// Time only moves when Advance is called.
type ManualScheduler struct {
	now    time.Duration
	next   Handle
	timers map[Handle]manualTimer
}

type manualTimer struct {
	due time.Duration
	fn  func()
}

// NewManualScheduler creates a scheduler at time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[Handle]manualTimer)}
}

// Arm schedules fn to run delay after the current clock value
func (s *ManualScheduler) Arm(delay time.Duration, fn func()) Handle {
	s.next++
	s.timers[s.next] = manualTimer{due: s.now + delay, fn: fn}
	return s.next
}

// Cancel removes a pending timer; unknown handles are ignored
func (s *ManualScheduler) Cancel(h Handle) {
	delete(s.timers, h)
}

// Pending returns the number of armed timers
func (s *ManualScheduler) Pending() int {
	return len(s.timers)
}

// Now returns the current clock value
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by d, running every timer that becomes due
// in due order. Timers armed by callbacks run too if they fall within d.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		h, ok := s.earliest(end)
		if !ok {
			break
		}
		t := s.timers[h]
		delete(s.timers, h)
		s.now = t.due
		t.fn()
	}
	s.now = end
}

func (s *ManualScheduler) earliest(limit time.Duration) (Handle, bool) {
	var due []Handle
	for h, t := range s.timers {
		if t.due <= limit {
			due = append(due, h)
		}
	}
	if len(due) == 0 {
		return 0, false
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := s.timers[due[i]], s.timers[due[j]]
		if a.due != b.due {
			return a.due < b.due
		}
		return due[i] < due[j]
	})
	return due[0], true
}
