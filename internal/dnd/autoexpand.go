package dnd

import (
	"log"
	"time"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// DefaultAutoExpandDelay is how long the pointer must rest inside a collapsed
// container before it opens
const DefaultAutoExpandDelay = 500 * time.Millisecond

// AutoExpandOptions wires an AutoExpander to the sidebar state
type AutoExpandOptions struct {
	Scheduler   Scheduler
	Delay       time.Duration
	HasChildren func(id string) bool
	IsExpanded  func(id string) bool
	Expand      func(id string)
	// Current returns the live drag triple, used to re-validate on fire
	Current func() State
}

// AutoExpander opens a hovered collapsed container after the pointer has
// stayed in its middle zone for the configured delay
type AutoExpander struct {
	opts    AutoExpandOptions
	pending Handle
	armed   bool
	closed  bool
}

// NewAutoExpander creates an AutoExpander; a zero delay means the default
func NewAutoExpander(opts AutoExpandOptions) *AutoExpander {
	if opts.Delay <= 0 {
		opts.Delay = DefaultAutoExpandDelay
	}
	return &AutoExpander{opts: opts}
}

// Observe must be called on every change of the drag triple
func (a *AutoExpander) Observe(s State) {
	a.cancel()
	if a.closed || !a.eligible(s) {
		return
	}
	want := s
	a.pending = a.opts.Scheduler.Arm(a.opts.Delay, func() {
		a.armed = false
		if a.closed || a.opts.Current == nil {
			return
		}
		if a.opts.Current() != want {
			return
		}
		log.Printf("auto-expanding %s while dragging %s", want.OverID, want.ActiveID)
		a.opts.Expand(want.OverID)
	})
	a.armed = true
}

// Pending reports whether a timer is armed
func (a *AutoExpander) Pending() bool {
	return a.armed
}

// Close cancels any pending timer; later observations are ignored
func (a *AutoExpander) Close() {
	a.cancel()
	a.closed = true
}

func (a *AutoExpander) eligible(s State) bool {
	if s.ActiveID == "" || s.OverID == "" || s.Position != model.DropInside {
		return false
	}
	if a.opts.HasChildren == nil || !a.opts.HasChildren(s.OverID) {
		return false
	}
	return a.opts.IsExpanded == nil || !a.opts.IsExpanded(s.OverID)
}

func (a *AutoExpander) cancel() {
	if a.armed {
		a.opts.Scheduler.Cancel(a.pending)
		a.armed = false
	}
}
