package dnd

import "github.com/pstuifzand/tui-sidebar/internal/model"

// State is the drag triple exposed for drop-indicator rendering
type State struct {
	ActiveID string
	OverID   string
	Position model.DropPosition
}

// Dragging reports whether a gesture is in progress
func (s State) Dragging() bool {
	return s.ActiveID != ""
}

// Target returns the drop position to draw on the row with the given id
func (s State) Target(id string) model.DropPosition {
	if s.OverID == "" || s.OverID != id || s.ActiveID == id {
		return model.DropNone
	}
	return s.Position
}

// Viewport resolves a droppable row's bounding box by item id
type Viewport interface {
	RowBounds(id string) (Rect, bool)
}

// ViewportFunc adapts a plain function to Viewport
type ViewportFunc func(id string) (Rect, bool)

func (f ViewportFunc) RowBounds(id string) (Rect, bool) { return f(id) }

// DropFunc receives a completed gesture
type DropFunc func(sourceID, targetID string, pos model.DropPosition)

// TrackerOptions wires a Tracker to its collaborators
type TrackerOptions struct {
	Viewport Viewport
	// HasChildren reports whether an item may accept an inside drop
	HasChildren func(id string) bool
	// OnDrop is called for every drop that names a target other than the source
	OnDrop DropFunc
	// OnChange is called whenever the drag triple changes
	OnChange func(State)
}

// Tracker follows a single drag gesture from start to drop or cancel
type Tracker struct {
	opts  TrackerOptions
	state State

	pointerY   float64
	hasPointer bool
}

// NewTracker creates an idle tracker
func NewTracker(opts TrackerOptions) *Tracker {
	return &Tracker{opts: opts}
}

// State returns the current drag triple
func (t *Tracker) State() State {
	return t.state
}

// Dragging reports whether a gesture is in progress
func (t *Tracker) Dragging() bool {
	return t.state.Dragging()
}

// Start begins dragging id. It is ignored while another drag is active.
func (t *Tracker) Start(id string) bool {
	if id == "" || t.state.Dragging() {
		return false
	}
	t.hasPointer = false
	t.set(State{ActiveID: id})
	return true
}

// Hover records the droppable under the pointer; "" means none.
// The drop position is resampled against the new row with the last pointer
// position so it never refers to the previous row.
func (t *Tracker) Hover(id string) {
	if !t.state.Dragging() || id == t.state.OverID {
		return
	}
	next := t.state
	next.OverID = id
	next.Position = model.DropNone
	if id != "" && t.hasPointer {
		if pos, ok := t.sample(id, t.pointerY); ok {
			next.Position = pos
		}
	}
	t.set(next)
}

// Move samples the pointer's vertical position
func (t *Tracker) Move(pointerY float64) {
	if !t.state.Dragging() {
		return
	}
	t.pointerY = pointerY
	t.hasPointer = true
	if t.state.OverID == "" {
		return
	}
	pos, ok := t.sample(t.state.OverID, pointerY)
	if !ok || pos == t.state.Position {
		return
	}
	next := t.state
	next.Position = pos
	t.set(next)
}

// Drop completes the gesture. The drop handler runs only when a target other
// than the dragged item is hovered; the tracker is idle afterwards either way.
func (t *Tracker) Drop() {
	if !t.state.Dragging() {
		return
	}
	s := t.state
	defer t.reset()
	if s.OverID == "" || s.OverID == s.ActiveID || t.opts.OnDrop == nil {
		return
	}
	t.opts.OnDrop(s.ActiveID, s.OverID, s.Position)
}

// Cancel aborts the gesture without dropping
func (t *Tracker) Cancel() {
	if !t.state.Dragging() {
		return
	}
	t.reset()
}

func (t *Tracker) reset() {
	t.hasPointer = false
	t.set(State{})
}

func (t *Tracker) sample(id string, pointerY float64) (model.DropPosition, bool) {
	if t.opts.Viewport == nil {
		return model.DropNone, false
	}
	row, ok := t.opts.Viewport.RowBounds(id)
	if !ok {
		return model.DropNone, false
	}
	container := t.opts.HasChildren != nil && t.opts.HasChildren(id)
	return ComputeDropPosition(row, pointerY, container), true
}

func (t *Tracker) set(next State) {
	if next == t.state {
		return
	}
	t.state = next
	if t.opts.OnChange != nil {
		t.opts.OnChange(next)
	}
}
