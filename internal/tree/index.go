package tree

import "github.com/pstuifzand/tui-sidebar/internal/model"

// Index answers parent/child questions about a flat item list in constant time.
// It is a read-only snapshot; rebuild it whenever the list changes.
type Index struct {
	byID       map[string]model.Item
	childCount map[string]int
}

// NewIndex builds an index over items. The first item wins on duplicate ids.
func NewIndex(items []model.Item) *Index {
	idx := &Index{
		byID:       make(map[string]model.Item, len(items)),
		childCount: make(map[string]int),
	}
	for _, item := range items {
		if _, exists := idx.byID[item.ID]; !exists {
			idx.byID[item.ID] = item
		}
		if item.ParentID != "" && item.ParentID != item.ID {
			idx.childCount[item.ParentID]++
		}
	}
	return idx
}

// Item returns the item with the given id
func (x *Index) Item(id string) (model.Item, bool) {
	item, ok := x.byID[id]
	return item, ok
}

// Has reports whether id is a known item
func (x *Index) Has(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// HasChildren reports whether any item names id as its parent
func (x *Index) HasChildren(id string) bool {
	return x.childCount[id] > 0
}

// ParentOf returns the resolved parent id of id, or "" when the item is a
// root in the built tree (no parent, dangling parent or self parent).
func (x *Index) ParentOf(id string) string {
	item, ok := x.byID[id]
	if !ok || item.ParentID == "" || item.ParentID == id {
		return ""
	}
	if _, ok := x.byID[item.ParentID]; !ok {
		return ""
	}
	return item.ParentID
}

// IsDescendant reports whether id lies strictly below ancestorID
func (x *Index) IsDescendant(ancestorID, id string) bool {
	if ancestorID == "" || id == "" || ancestorID == id {
		return false
	}
	seen := map[string]bool{id: true}
	for cur := x.ParentOf(id); cur != ""; cur = x.ParentOf(cur) {
		if cur == ancestorID {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
	}
	return false
}

// Ancestors returns the resolved parent chain of id, nearest first
func (x *Index) Ancestors(id string) []string {
	var out []string
	seen := map[string]bool{id: true}
	for cur := x.ParentOf(id); cur != "" && !seen[cur]; cur = x.ParentOf(cur) {
		seen[cur] = true
		out = append(out, cur)
	}
	return out
}
