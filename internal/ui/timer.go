package ui

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-sidebar/internal/dnd"
)

// EventPoster is the part of a screen that accepts events from other
// goroutines
type EventPoster interface {
	PostEvent(ev tcell.Event) error
}

// timerFired is carried by the interrupt event a timer posts
type timerFired struct {
	handle dnd.Handle
}

// TimerScheduler runs dnd timers on the event loop. A timer posts an
// interrupt when it expires; the loop passes every interrupt to Dispatch,
// which runs the callback unless the timer was cancelled in the meantime.
type TimerScheduler struct {
	poster EventPoster

	mu     sync.Mutex
	next   dnd.Handle
	timers map[dnd.Handle]*pendingTimer
}

type pendingTimer struct {
	timer *time.Timer
	fn    func()
}

// NewTimerScheduler creates a scheduler that posts to poster
func NewTimerScheduler(poster EventPoster) *TimerScheduler {
	return &TimerScheduler{poster: poster, timers: make(map[dnd.Handle]*pendingTimer)}
}

// Arm implements dnd.Scheduler
func (s *TimerScheduler) Arm(delay time.Duration, fn func()) dnd.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.timers[h] = &pendingTimer{
		fn: fn,
		timer: time.AfterFunc(delay, func() {
			if err := s.poster.PostEvent(tcell.NewEventInterrupt(timerFired{handle: h})); err != nil {
				log.Printf("Dropped timer %d: %v", h, err)
				s.mu.Lock()
				delete(s.timers, h)
				s.mu.Unlock()
			}
		}),
	}
	return h
}

// Cancel implements dnd.Scheduler
func (s *TimerScheduler) Cancel(h dnd.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[h]; ok {
		t.timer.Stop()
		delete(s.timers, h)
	}
}

// Pending returns the number of armed timers
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Dispatch runs the callback of a fired timer. It reports whether ev was a
// timer event at all.
func (s *TimerScheduler) Dispatch(ev tcell.Event) bool {
	irq, ok := ev.(*tcell.EventInterrupt)
	if !ok {
		return false
	}
	fired, ok := irq.Data().(timerFired)
	if !ok {
		return false
	}
	s.mu.Lock()
	t, armed := s.timers[fired.handle]
	delete(s.timers, fired.handle)
	s.mu.Unlock()
	if armed {
		t.fn()
	}
	return true
}

// Close stops every armed timer
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for h, t := range s.timers {
		t.timer.Stop()
		delete(s.timers, h)
	}
}
