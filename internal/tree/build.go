// Package tree turns the flat navigation item list into a hierarchy, projects
// it into the visible row sequence and computes reorder/reparent results.
//
// Every function in this package is pure: inputs are never mutated and the
// returned slices share no backing arrays with them.
package tree

import (
	"sort"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// Build converts a flat item list into a forest sorted by sibling order.
//
// Items whose ParentID is empty, unknown or equal to their own ID become
// roots. Items that are only reachable through a parent cycle are attached
// under the cycle member met first in input order, which is promoted to a
// root, so every input item appears in the forest exactly once.
func Build(items []model.Item) []*model.TreeNode {
	all := make([]*model.TreeNode, 0, len(items))
	byID := make(map[string]*model.TreeNode, len(items))
	for _, item := range items {
		node := &model.TreeNode{Item: item}
		all = append(all, node)
		if _, exists := byID[item.ID]; !exists {
			byID[item.ID] = node
		}
	}

	parent := make(map[*model.TreeNode]*model.TreeNode, len(all))
	var roots []*model.TreeNode
	for _, node := range all {
		p, ok := byID[node.ParentID]
		if node.ParentID == "" || !ok || p == node {
			roots = append(roots, node)
			continue
		}
		parent[node] = p
		p.Children = append(p.Children, node)
	}

	reached := make(map[*model.TreeNode]bool, len(all))
	var mark func(n *model.TreeNode)
	mark = func(n *model.TreeNode) {
		reached[n] = true
		for _, c := range n.Children {
			mark(c)
		}
	}
	for _, r := range roots {
		mark(r)
	}

	// Anything still unreached hangs below a parent cycle. Walk up to the
	// first repeated node, cut it loose from its parent and make it a root.
	for _, node := range all {
		if reached[node] {
			continue
		}
		seen := make(map[*model.TreeNode]bool)
		cur := node
		for !seen[cur] {
			seen[cur] = true
			cur = parent[cur]
		}
		p := parent[cur]
		p.Children = removeNode(p.Children, cur)
		delete(parent, cur)
		roots = append(roots, cur)
		mark(cur)
	}

	sortNodes(roots, 0)
	return roots
}

// sortNodes stable-sorts each level by Order and assigns depths top-down
func sortNodes(nodes []*model.TreeNode, depth int) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
	for _, n := range nodes {
		n.Depth = depth
		sortNodes(n.Children, depth+1)
	}
}

func removeNode(nodes []*model.TreeNode, target *model.TreeNode) []*model.TreeNode {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}

// Flatten returns every node of the forest in pre-order
func Flatten(forest []*model.TreeNode) []*model.TreeNode {
	var result []*model.TreeNode
	var walk func(nodes []*model.TreeNode)
	walk = func(nodes []*model.TreeNode) {
		for _, n := range nodes {
			result = append(result, n)
			walk(n.Children)
		}
	}
	walk(forest)
	return result
}

// Items converts nodes back into the flat items they were built from
func Items(nodes []*model.TreeNode) []model.Item {
	out := make([]model.Item, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Item)
	}
	return out
}

// HasChildren reports whether any item in the flat list names id as its parent.
// A self-referencing item does not count as its own child.
func HasChildren(items []model.Item, id string) bool {
	if id == "" {
		return false
	}
	for _, item := range items {
		if item.ParentID == id && item.ID != id {
			return true
		}
	}
	return false
}

// IsDescendant reports whether id lies strictly below ancestorID when
// following parent references in items. Cycles terminate the walk.
func IsDescendant(items []model.Item, ancestorID, id string) bool {
	idx := NewIndex(items)
	return idx.IsDescendant(ancestorID, id)
}
