package sidebar

import "github.com/pstuifzand/tui-sidebar/internal/model"

// ResizeGesture is a pointer drag on the resize handle. End must run on
// every exit path; the host defers it when the gesture begins.
type ResizeGesture struct {
	s          *Sidebar
	startX     int
	startWidth int
	right      bool
	active     bool
}

// BeginResize starts a resize at column x. It returns nil while collapsed or
// when a resize is already active.
func (s *Sidebar) BeginResize(x int) *ResizeGesture {
	if s.props.Collapsed || s.resize != nil {
		return nil
	}
	g := &ResizeGesture{
		s:          s,
		startX:     x,
		startWidth: s.props.Width,
		right:      s.props.Position == model.PositionRight,
		active:     true,
	}
	s.resize = g
	return g
}

// Resizing reports whether a resize gesture is active
func (s *Sidebar) Resizing() bool {
	return s.resize != nil
}

// ActiveResize returns the gesture in progress, or nil
func (s *Sidebar) ActiveResize() *ResizeGesture {
	return s.resize
}

// Move applies the pointer at column x. The width follows the pointer on a
// left sidebar and mirrors it on a right one.
func (g *ResizeGesture) Move(x int) {
	if g == nil || !g.active {
		return
	}
	delta := x - g.startX
	if g.right {
		delta = -delta
	}
	g.s.SetWidth(g.startWidth + delta)
}

// End finishes the gesture. Calling it more than once is harmless.
func (g *ResizeGesture) End() {
	if g == nil || !g.active {
		return
	}
	g.active = false
	if g.s.resize == g {
		g.s.resize = nil
	}
}
