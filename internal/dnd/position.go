// Package dnd implements the drag-and-drop gesture state machine for the
// navigation tree: drop position sampling, the drag tracker and the delayed
// auto-expand of collapsed containers.
//
// Nothing in this package locks. All methods are meant to be called from the
// single goroutine that processes UI events; schedulers must deliver timer
// callbacks on that same goroutine.
package dnd

import "github.com/pstuifzand/tui-sidebar/internal/model"

// Rect is the bounding box of a droppable row in screen coordinates
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ComputeDropPosition classifies the pointer's vertical offset within a row.
// The top third is before, the bottom third is after and the middle third is
// inside for containers and after otherwise. Exact boundaries resolve away
// from before/after, since both comparisons are strict.
func ComputeDropPosition(row Rect, pointerY float64, container bool) model.DropPosition {
	rel := pointerY - row.Y
	threshold := row.Height / 3
	switch {
	case rel < threshold:
		return model.DropBefore
	case rel > row.Height-threshold:
		return model.DropAfter
	case container:
		return model.DropInside
	default:
		return model.DropAfter
	}
}
