package tree

import (
	"slices"
	"sort"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// Reorder returns a new item list with sourceID moved relative to targetID.
//
//   - DropInside makes the source the last child of the target.
//   - DropBefore/DropAfter move the source into the target's sibling group,
//     directly in front of or behind the target.
//
// The destination sibling group is renumbered 0..n-1 around the insertion
// point, and so is the group the source left. All other items keep their
// order values exactly. Self drops, unknown ids, DropNone and drops onto a
// descendant of the source return an unchanged copy.
//
// Sibling groups follow the built tree: items with a dangling or self parent
// belong to the root group, so a before/after drop lands the source wherever
// the target is displayed.
func Reorder(items []model.Item, sourceID, targetID string, pos model.DropPosition) []model.Item {
	out, _ := Move(items, sourceID, targetID, pos)
	return out
}

// Move is Reorder that also reports whether the result differs from items
func Move(items []model.Item, sourceID, targetID string, pos model.DropPosition) ([]model.Item, bool) {
	out := model.CloneItems(items)
	if sourceID == "" || sourceID == targetID || pos == model.DropNone {
		return out, false
	}

	idx := NewIndex(items)
	_, ok := idx.Item(sourceID)
	if !ok {
		return out, false
	}
	target, ok := idx.Item(targetID)
	if !ok {
		return out, false
	}
	// Dropping next to or into one's own subtree would detach it into a cycle
	if idx.IsDescendant(sourceID, targetID) {
		return out, false
	}

	var newParent string
	var insertAt int
	if pos == model.DropInside {
		newParent = target.ID
		insertAt = len(siblingPositions(items, idx, newParent, sourceID))
	} else {
		newParent = idx.ParentOf(target.ID)
		sibs := siblingPositions(items, idx, newParent, sourceID)
		insertAt = slices.IndexFunc(sibs, func(i int) bool { return items[i].ID == targetID })
		if insertAt < 0 {
			return out, false
		}
		if pos == model.DropAfter {
			insertAt++
		}
	}

	for _, i := range positionsOf(items, sourceID) {
		out[i].ParentID = newParent
		out[i].Order = insertAt
	}
	for n, i := range siblingPositions(items, idx, newParent, sourceID) {
		if n >= insertAt {
			out[i].Order = n + 1
		} else {
			out[i].Order = n
		}
	}
	if oldParent := idx.ParentOf(sourceID); oldParent != newParent {
		for n, i := range siblingPositions(items, idx, oldParent, sourceID) {
			out[i].Order = n
		}
	}

	return out, !slices.Equal(out, items)
}

// siblingPositions returns the indexes into items of every item whose
// resolved parent is parentID, except excludeID, in display order: ascending
// Order with ties kept in input order.
func siblingPositions(items []model.Item, idx *Index, parentID, excludeID string) []int {
	var pos []int
	for i, item := range items {
		if resolvedParent(idx, item) == parentID && item.ID != excludeID {
			pos = append(pos, i)
		}
	}
	sort.SliceStable(pos, func(a, b int) bool {
		return items[pos[a]].Order < items[pos[b]].Order
	})
	return pos
}

// resolvedParent is the parent item is displayed under: "" for roots,
// dangling parents and self parents
func resolvedParent(idx *Index, item model.Item) string {
	if item.ParentID == item.ID || !idx.Has(item.ParentID) {
		return ""
	}
	return item.ParentID
}

func positionsOf(items []model.Item, id string) []int {
	var pos []int
	for i, item := range items {
		if item.ID == id {
			pos = append(pos, i)
		}
	}
	return pos
}

// Normalize renumbers every sibling group to 0..n-1, keeping display order
func Normalize(items []model.Item) []model.Item {
	out := model.CloneItems(items)
	idx := NewIndex(items)
	seen := make(map[string]bool)
	for _, item := range items {
		parent := resolvedParent(idx, item)
		if seen[parent] {
			continue
		}
		seen[parent] = true
		for n, i := range siblingPositions(items, idx, parent, "") {
			out[i].Order = n
		}
	}
	return out
}
