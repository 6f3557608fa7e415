package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-sidebar/internal/sidebar"
)

type gesture int

const (
	gestureIdle gesture = iota
	gesturePressed
	gestureDragging
	gestureResizing
	gestureIgnored // press outside anything draggable; wait for release
)

// MouseActions are the host-level reactions to clicks outside the tree
type MouseActions struct {
	OpenPanelMenu func()
	OpenSettings  func()
	FocusSearch   func()
}

// MouseController turns raw tcell mouse events into sidebar gestures. A
// press on a row becomes a click on release, or a drag once the pointer
// moves to another cell. A press on the border starts a resize.
type MouseController struct {
	view    *SidebarView
	sb      *sidebar.Sidebar
	actions MouseActions

	state          gesture
	pressX, pressY int
	pressID        string
	resize         *sidebar.ResizeGesture
}

// NewMouseController creates a controller for view and sb
func NewMouseController(view *SidebarView, sb *sidebar.Sidebar, actions MouseActions) *MouseController {
	return &MouseController{view: view, sb: sb, actions: actions}
}

// Busy reports whether a gesture is in progress
func (m *MouseController) Busy() bool {
	return m.state != gestureIdle
}

// Handle processes one mouse event
func (m *MouseController) Handle(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		m.view.ScrollBy(-1)
		m.resampleDrag(x, y)
		return
	case buttons&tcell.WheelDown != 0:
		m.view.ScrollBy(1)
		m.resampleDrag(x, y)
		return
	}

	if buttons&tcell.Button1 == 0 {
		m.release(x, y)
		return
	}
	if m.state == gestureIdle {
		m.press(x, y)
		return
	}
	m.motion(x, y)
}

func (m *MouseController) press(x, y int) {
	hit := m.view.HitTest(x, y)
	m.state = gestureIgnored
	switch hit.Region {
	case RegionResize:
		if g := m.sb.BeginResize(x); g != nil {
			m.resize = g
			m.state = gestureResizing
		}
	case RegionCollapse:
		m.sb.ToggleCollapsed()
	case RegionPanel:
		call(m.actions.OpenPanelMenu)
	case RegionSearch:
		call(m.actions.FocusSearch)
	case RegionFooter:
		call(m.actions.OpenSettings)
	case RegionRow:
		m.state = gesturePressed
		m.pressX, m.pressY, m.pressID = x, y, hit.ID
	}
}

func (m *MouseController) motion(x, y int) {
	switch m.state {
	case gestureResizing:
		m.resize.Move(x)
	case gesturePressed:
		if x == m.pressX && y == m.pressY {
			return
		}
		if !m.sb.StartDrag(m.pressID) {
			m.state = gestureIgnored
			return
		}
		m.state = gestureDragging
		m.drag(x, y)
	case gestureDragging:
		m.drag(x, y)
	}
}

func (m *MouseController) release(x, y int) {
	switch m.state {
	case gestureResizing:
		m.resize.End()
		m.resize = nil
	case gesturePressed:
		m.sb.Click(m.pressID)
		m.view.EnsureVisible(m.pressID)
	case gestureDragging:
		m.drag(x, y)
		m.sb.Drop()
		m.view.ClearPointer()
	}
	m.reset()
}

// Cancel aborts the gesture in progress, as on Escape
func (m *MouseController) Cancel() {
	switch m.state {
	case gestureDragging:
		m.sb.CancelDrag()
		m.view.ClearPointer()
	case gestureResizing:
		m.resize.End()
		m.resize = nil
	}
	m.reset()
}

func (m *MouseController) reset() {
	m.state = gestureIdle
	m.pressID = ""
}

// drag feeds the row under the pointer and the pointer's vertical position
// to the tracker. The pointer sits in the middle of its cell.
func (m *MouseController) drag(x, y int) {
	if !m.sb.Dragging() {
		// The drag ended underneath us, e.g. the sidebar collapsed
		m.view.ClearPointer()
		m.state = gestureIgnored
		return
	}
	m.view.SetPointer(x, y)
	hit := m.view.HitTest(x, y)
	m.sb.HoverDrag(hit.ID)
	m.sb.MoveDrag(float64(y) + 0.5)
}

func (m *MouseController) resampleDrag(x, y int) {
	if m.state == gestureDragging {
		m.drag(x, y)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
