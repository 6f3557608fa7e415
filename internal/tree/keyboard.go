package tree

import (
	"slices"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// MoveUp swaps id with its previous sibling
func MoveUp(items []model.Item, id string) ([]model.Item, bool) {
	prev, _ := siblingsAround(items, id)
	if prev == "" {
		return model.CloneItems(items), false
	}
	return Move(items, id, prev, model.DropBefore)
}

// MoveDown swaps id with its next sibling
func MoveDown(items []model.Item, id string) ([]model.Item, bool) {
	_, next := siblingsAround(items, id)
	if next == "" {
		return model.CloneItems(items), false
	}
	return Move(items, id, next, model.DropAfter)
}

// Indent makes id the last child of its previous sibling. Unlike a pointer
// drop, the new parent does not need to have children already.
func Indent(items []model.Item, id string) ([]model.Item, string, bool) {
	prev, _ := siblingsAround(items, id)
	if prev == "" {
		return model.CloneItems(items), "", false
	}
	out, changed := Move(items, id, prev, model.DropInside)
	return out, prev, changed
}

// Outdent moves id out of its parent, directly behind it
func Outdent(items []model.Item, id string) ([]model.Item, bool) {
	parent := NewIndex(items).ParentOf(id)
	if parent == "" {
		return model.CloneItems(items), false
	}
	return Move(items, id, parent, model.DropAfter)
}

// siblingsAround returns the ids of the siblings displayed directly before
// and after id; "" when there is none
func siblingsAround(items []model.Item, id string) (prev, next string) {
	idx := NewIndex(items)
	if !idx.Has(id) {
		return "", ""
	}
	sibs := siblingPositions(items, idx, idx.ParentOf(id), "")
	at := slices.IndexFunc(sibs, func(i int) bool { return items[i].ID == id })
	if at < 0 {
		return "", ""
	}
	if at > 0 {
		prev = items[sibs[at-1]].ID
	}
	if at < len(sibs)-1 {
		next = items[sibs[at+1]].ID
	}
	return prev, next
}
