package sidebar

import (
	"log"
	"slices"

	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/tree"
)

// SelectNext moves the selection down one visible row
func (s *Sidebar) SelectNext() {
	s.selectRelative(1)
}

// SelectPrev moves the selection up one visible row
func (s *Sidebar) SelectPrev() {
	s.selectRelative(-1)
}

// SelectFirst selects the first visible row
func (s *Sidebar) SelectFirst() {
	if rows := s.Visible(); len(rows) > 0 {
		s.Select(rows[0].ID)
	}
}

// SelectLast selects the last visible row
func (s *Sidebar) SelectLast() {
	if rows := s.Visible(); len(rows) > 0 {
		s.Select(rows[len(rows)-1].ID)
	}
}

func (s *Sidebar) selectRelative(delta int) {
	rows := s.Visible()
	if len(rows) == 0 {
		return
	}
	at := s.RowIndex(s.selected)
	if at < 0 {
		s.Select(rows[0].ID)
		return
	}
	next := clamp(at+delta, 0, len(rows)-1)
	if next != at {
		s.Select(rows[next].ID)
	}
}

// RowIndex returns the visible row index of id, or -1
func (s *Sidebar) RowIndex(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.Visible(), func(n *model.TreeNode) bool { return n.ID == id })
}

// ToggleSelected flips expansion of the selected container
func (s *Sidebar) ToggleSelected() {
	if s.HasChildren(s.selected) {
		s.Toggle(s.selected)
	}
}

// ExpandSelected opens the selected container, or steps into its first
// child when it is already open
func (s *Sidebar) ExpandSelected() {
	if !s.HasChildren(s.selected) {
		return
	}
	if !s.expanded.Has(s.selected) {
		s.Expand(s.selected)
		return
	}
	s.selectRelative(1)
}

// CollapseSelected closes the selected container, or selects its parent
// when it is already closed
func (s *Sidebar) CollapseSelected() {
	if s.selected == "" {
		return
	}
	if s.expanded.Has(s.selected) && s.HasChildren(s.selected) {
		s.Collapse(s.selected)
		return
	}
	if parent := s.index.ParentOf(s.selected); parent != "" && s.RowIndex(parent) >= 0 {
		s.Select(parent)
	}
}

// MoveSelectedUp swaps the selected item with its previous sibling
func (s *Sidebar) MoveSelectedUp() bool {
	return s.keyboardMove("move up", func(items []model.Item, id string) ([]model.Item, bool) {
		return tree.MoveUp(items, id)
	})
}

// MoveSelectedDown swaps the selected item with its next sibling
func (s *Sidebar) MoveSelectedDown() bool {
	return s.keyboardMove("move down", func(items []model.Item, id string) ([]model.Item, bool) {
		return tree.MoveDown(items, id)
	})
}

// IndentSelected makes the selected item the last child of its previous
// sibling, which is expanded so the item stays visible
func (s *Sidebar) IndentSelected() bool {
	return s.keyboardMove("indent", func(items []model.Item, id string) ([]model.Item, bool) {
		out, parent, changed := tree.Indent(items, id)
		if changed {
			s.expanded.Add(parent)
		}
		return out, changed
	})
}

// OutdentSelected moves the selected item out of its parent
func (s *Sidebar) OutdentSelected() bool {
	return s.keyboardMove("outdent", func(items []model.Item, id string) ([]model.Item, bool) {
		return tree.Outdent(items, id)
	})
}

func (s *Sidebar) keyboardMove(action string, move func([]model.Item, string) ([]model.Item, bool)) bool {
	if s.selected == "" || s.Dragging() {
		return false
	}
	out, changed := move(s.props.Items, s.selected)
	if !changed {
		return false
	}
	log.Printf("Keyboard %s of %s", action, s.selected)
	s.applyItems(out)
	return true
}
