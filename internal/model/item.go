// Package model contains the model for the navigation sidebar
package model

// IconType names the icon drawn in front of an item
type IconType string

const (
	IconGrid  IconType = "grid"
	IconStar  IconType = "star"
	IconTag   IconType = "tag"
	IconAlert IconType = "alert"
	IconUser  IconType = "user"
)

// Item represents a single navigation entry in the flat item list.
// The host owns the list; the sidebar only ever returns modified copies.
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Icon      IconType `json:"icon,omitempty"`
	IconColor string   `json:"iconColor,omitempty"`
	ParentID  string   `json:"parentId,omitempty"` // Empty for root items
	Order     int      `json:"order"`
}

// IsRoot reports whether the item has no parent reference
func (i Item) IsRoot() bool {
	return i.ParentID == ""
}

// TreeNode is an Item placed in the hierarchy built from the flat list.
// Nodes are rebuilt on every change and carry no identity across rebuilds.
type TreeNode struct {
	Item
	Children []*TreeNode
	Depth    int
}

// HasChildren reports whether the node has at least one child in the built tree
func (n *TreeNode) HasChildren() bool {
	return len(n.Children) > 0
}

// Panel is an entry in the panel selector at the top of the sidebar
type Panel struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is the file format used by the host to persist the sidebar
type Document struct {
	Panels []Panel `json:"panels"`
	Items  []Item  `json:"items"`
}

// CloneItems returns a copy of items that shares no backing array with the input
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// FindItem returns the item with the given id
func FindItem(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
