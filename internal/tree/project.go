package tree

import (
	"slices"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// Project flattens the forest into the visible row sequence, in pre-order.
//
// With an empty query (browse mode) a node is visible when every ancestor is
// expanded; roots are always visible. With a query (search mode) expand state
// is ignored and a node is visible when its name matches or it is an ancestor
// of a match. Marking ancestors stops at the first one already marked, so the
// cost is bounded by depth x matches.
func Project(forest []*model.TreeNode, expanded *ExpandedSet, query string) []*model.TreeNode {
	m := NewMatcher(query)
	if m.Empty() {
		return browse(forest, expanded)
	}
	return search(forest, m)
}

func browse(forest []*model.TreeNode, expanded *ExpandedSet) []*model.TreeNode {
	var result []*model.TreeNode
	var walk func(nodes []*model.TreeNode)
	walk = func(nodes []*model.TreeNode) {
		for _, n := range nodes {
			result = append(result, n)
			if expanded.Has(n.ID) {
				walk(n.Children)
			}
		}
	}
	walk(forest)
	return result
}

func search(forest []*model.TreeNode, m Matcher) []*model.TreeNode {
	// flat[i] has its parent at flat[parentIdx[i]], -1 for roots
	var flat []*model.TreeNode
	var parentIdx []int
	var walk func(nodes []*model.TreeNode, parent int)
	walk = func(nodes []*model.TreeNode, parent int) {
		for _, n := range nodes {
			idx := len(flat)
			flat = append(flat, n)
			parentIdx = append(parentIdx, parent)
			walk(n.Children, idx)
		}
	}
	walk(forest, -1)

	keep := make([]bool, len(flat))
	for i, n := range flat {
		if !m.Match(n.Name) {
			continue
		}
		keep[i] = true
		for p := parentIdx[i]; p >= 0 && !keep[p]; p = parentIdx[p] {
			keep[p] = true
		}
	}

	var result []*model.TreeNode
	for i, n := range flat {
		if keep[i] {
			result = append(result, n)
		}
	}
	return result
}

// Projector caches Build and Project results and recomputes them only when
// the items, the expanded set or the query change.
type Projector struct {
	items    []model.Item
	forest   []*model.TreeNode
	built    bool
	expanded *ExpandedSet
	revision uint64
	query    string
	visible  []*model.TreeNode
	valid    bool
}

// Forest returns the memoized forest for items
func (p *Projector) Forest(items []model.Item) []*model.TreeNode {
	if !p.built || !slices.Equal(p.items, items) {
		p.items = model.CloneItems(items)
		p.forest = Build(items)
		p.built = true
		p.valid = false
	}
	return p.forest
}

// Visible returns the memoized projection for the given inputs
func (p *Projector) Visible(items []model.Item, expanded *ExpandedSet, query string) []*model.TreeNode {
	forest := p.Forest(items)
	if p.valid && p.expanded == expanded && p.revision == expanded.Revision() && p.query == query {
		return p.visible
	}
	p.visible = Project(forest, expanded, query)
	p.expanded = expanded
	p.revision = expanded.Revision()
	p.query = query
	p.valid = true
	return p.visible
}

// Invalidate drops every cached result
func (p *Projector) Invalidate() {
	p.built = false
	p.valid = false
}
