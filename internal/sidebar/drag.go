package sidebar

import (
	"log"

	"github.com/pstuifzand/tui-sidebar/internal/dnd"
	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/tree"
)

// StartDrag begins dragging id. Only one drag can be active; a collapsed
// sidebar shows no rows and accepts no drags.
func (s *Sidebar) StartDrag(id string) bool {
	if s.props.Collapsed || !s.index.Has(id) {
		return false
	}
	return s.tracker.Start(id)
}

// HoverDrag records the row under the pointer; "" when the pointer is over
// no row
func (s *Sidebar) HoverDrag(id string) {
	s.tracker.Hover(id)
}

// MoveDrag samples the pointer's vertical position in screen coordinates
func (s *Sidebar) MoveDrag(pointerY float64) {
	s.tracker.Move(pointerY)
}

// Drop completes the drag
func (s *Sidebar) Drop() {
	s.tracker.Drop()
}

// CancelDrag aborts the drag without changing any item
func (s *Sidebar) CancelDrag() {
	s.tracker.Cancel()
}

// Dragging reports whether a drag is in progress
func (s *Sidebar) Dragging() bool {
	return s.tracker.Dragging()
}

func (s *Sidebar) drop(sourceID, targetID string, pos model.DropPosition) {
	out, changed := tree.Move(s.props.Items, sourceID, targetID, pos)
	if !changed {
		return
	}
	if pos == model.DropInside {
		s.expanded.Add(targetID)
	}
	log.Printf("Moved %s %s %s", sourceID, pos, targetID)
	s.applyItems(out)
}

func (s *Sidebar) dragChanged(state dnd.State) {
	if s.auto != nil {
		s.auto.Observe(state)
	}
	if s.cb.OnDragChange != nil {
		s.cb.OnDragChange(state)
	}
}
