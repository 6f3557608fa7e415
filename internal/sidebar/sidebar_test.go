package sidebar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-sidebar/internal/dnd"
	"github.com/pstuifzand/tui-sidebar/internal/model"
)

const rowHeight = 3

func testItems() []model.Item {
	return []model.Item{
		{ID: "a", Name: "Alpha", Order: 0},
		{ID: "b", Name: "Board", Order: 1},
		{ID: "b1", Name: "Board child", ParentID: "b", Order: 0},
		{ID: "c", Name: "Charts", Order: 2},
		{ID: "c1", Name: "Chart one", ParentID: "c", Order: 0},
	}
}

type recorder struct {
	items     [][]model.Item
	selected  []string
	panels    []string
	widths    []int
	collapsed []bool
	positions []model.SidebarPosition
}

type fixture struct {
	sb    *Sidebar
	sched *dnd.ManualScheduler
	rec   *recorder
}

func newFixture(t *testing.T, props Props) *fixture {
	t.Helper()
	if props.Items == nil {
		props.Items = testItems()
	}
	f := &fixture{sched: dnd.NewManualScheduler(), rec: &recorder{}}
	cb := Callbacks{
		OnItemsChange:     func(items []model.Item) { f.rec.items = append(f.rec.items, items) },
		OnItemSelect:      func(item model.Item) { f.rec.selected = append(f.rec.selected, item.ID) },
		OnPanelChange:     func(v string) { f.rec.panels = append(f.rec.panels, v) },
		OnWidthChange:     func(w int) { f.rec.widths = append(f.rec.widths, w) },
		OnCollapsedChange: func(c bool) { f.rec.collapsed = append(f.rec.collapsed, c) },
		OnPositionChange:  func(p model.SidebarPosition) { f.rec.positions = append(f.rec.positions, p) },
	}
	viewport := dnd.ViewportFunc(func(id string) (dnd.Rect, bool) {
		at := f.sb.RowIndex(id)
		if at < 0 {
			return dnd.Rect{}, false
		}
		return dnd.Rect{Y: float64(at * rowHeight), Width: 28, Height: rowHeight}, true
	})
	f.sb = New(props, cb, Options{Scheduler: f.sched, Viewport: viewport})
	t.Cleanup(f.sb.Close)
	return f
}

// pointAt returns a pointer y in the given third (0, 1, 2) of id's row
func (f *fixture) pointAt(t *testing.T, id string, third int) float64 {
	t.Helper()
	at := f.sb.RowIndex(id)
	require.GreaterOrEqual(t, at, 0, "row %s not visible", id)
	return float64(at*rowHeight+third) + 0.5
}

func (f *fixture) dragTo(t *testing.T, source, target string, third int) {
	t.Helper()
	require.True(t, f.sb.StartDrag(source))
	f.sb.HoverDrag(target)
	f.sb.MoveDrag(f.pointAt(t, target, third))
}

func visibleIDs(sb *Sidebar) []string {
	var out []string
	for _, n := range sb.Visible() {
		out = append(out, n.ID)
	}
	return out
}

func TestVisibleRespectsExpansion(t *testing.T) {
	f := newFixture(t, Props{})
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(f.sb))

	f.sb.Toggle("b")
	assert.Equal(t, []string{"a", "b", "b1", "c"}, visibleIDs(f.sb))
	assert.Equal(t, []string{"b"}, f.sb.Expanded())
}

func TestSearchShowsMatchesWithAncestors(t *testing.T) {
	f := newFixture(t, Props{})
	f.sb.SetSearch("one")
	assert.Equal(t, []string{"c", "c1"}, visibleIDs(f.sb))

	f.sb.SetSearch("")
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(f.sb))
}

func TestClickTogglesContainerAndSelects(t *testing.T) {
	f := newFixture(t, Props{})

	f.sb.Click("b")
	assert.True(t, f.sb.IsExpanded("b"))
	assert.Equal(t, "b", f.sb.Selected())

	f.sb.Click("b")
	assert.False(t, f.sb.IsExpanded("b"))

	f.sb.Click("a")
	assert.False(t, f.sb.IsExpanded("a"))
	assert.Equal(t, []string{"b", "b", "a"}, f.rec.selected)
}

func TestSelectedItemFollowsProps(t *testing.T) {
	f := newFixture(t, Props{SelectedItemID: "c"})
	assert.Equal(t, "c", f.sb.Selected())

	p := f.sb.Props()
	p.SelectedItemID = "a"
	f.sb.SetProps(p)
	assert.Equal(t, "a", f.sb.Selected())

	p.SelectedItemID = ""
	f.sb.SetProps(p)
	assert.Equal(t, "a", f.sb.Selected())
}

func TestDropBeforeReorders(t *testing.T) {
	f := newFixture(t, Props{})

	f.dragTo(t, "c", "a", 0)
	assert.Equal(t, dnd.State{ActiveID: "c", OverID: "a", Position: model.DropBefore}, f.sb.DragState())
	f.sb.Drop()

	require.Len(t, f.rec.items, 1)
	assert.Equal(t, []string{"c", "a", "b"}, visibleIDs(f.sb))
	assert.False(t, f.sb.Dragging())
}

func TestDropInsideExpandsTarget(t *testing.T) {
	f := newFixture(t, Props{})

	f.dragTo(t, "a", "b", 1)
	require.Equal(t, model.DropInside, f.sb.DragState().Position)
	f.sb.Drop()

	require.Len(t, f.rec.items, 1)
	assert.True(t, f.sb.IsExpanded("b"))
	assert.Equal(t, []string{"b", "b1", "a", "c"}, visibleIDs(f.sb))
	moved, _ := f.sb.Item("a")
	assert.Equal(t, "b", moved.ParentID)
	assert.Equal(t, 1, moved.Order)
}

func TestDropIntoOwnSubtreeIsIgnored(t *testing.T) {
	f := newFixture(t, Props{})
	f.sb.Expand("b")

	f.dragTo(t, "b", "b1", 2)
	f.sb.Drop()

	assert.Empty(t, f.rec.items)
	assert.Equal(t, testItems(), f.sb.Items())
}

func TestDropOnSelfOrNothingIsIgnored(t *testing.T) {
	f := newFixture(t, Props{})

	f.dragTo(t, "a", "a", 2)
	f.sb.Drop()
	require.True(t, f.sb.StartDrag("a"))
	f.sb.Drop()

	assert.Empty(t, f.rec.items)
}

func TestCancelDragLeavesItems(t *testing.T) {
	f := newFixture(t, Props{})
	f.dragTo(t, "a", "c", 2)
	f.sb.CancelDrag()

	assert.Empty(t, f.rec.items)
	assert.Equal(t, dnd.State{}, f.sb.DragState())
}

func TestAutoExpandWhenHoveringInside(t *testing.T) {
	f := newFixture(t, Props{})

	f.dragTo(t, "a", "b", 1)
	f.sched.Advance(499 * time.Millisecond)
	assert.False(t, f.sb.IsExpanded("b"))

	f.sched.Advance(time.Millisecond)
	assert.True(t, f.sb.IsExpanded("b"))
	assert.Equal(t, []string{"a", "b", "b1", "c"}, visibleIDs(f.sb))
	assert.True(t, f.sb.Dragging())
}

func TestNoAutoExpandWhenPointerMovesAway(t *testing.T) {
	f := newFixture(t, Props{})

	f.dragTo(t, "a", "b", 1)
	f.sched.Advance(200 * time.Millisecond)
	f.sb.MoveDrag(f.pointAt(t, "b", 2))

	f.sched.Advance(time.Second)
	assert.False(t, f.sb.IsExpanded("b"))
}

func TestAutoExpandDelayFromProps(t *testing.T) {
	f := newFixture(t, Props{AutoExpandDelay: 100 * time.Millisecond})

	f.dragTo(t, "a", "c", 1)
	f.sched.Advance(100 * time.Millisecond)
	assert.True(t, f.sb.IsExpanded("c"))
}

func TestCloseCancelsAutoExpand(t *testing.T) {
	f := newFixture(t, Props{})
	f.dragTo(t, "a", "b", 1)

	f.sb.Close()
	assert.Equal(t, 0, f.sched.Pending())
	assert.False(t, f.sb.Dragging())
}

func TestSetItemsCancelsDragOfRemovedItem(t *testing.T) {
	f := newFixture(t, Props{})
	require.True(t, f.sb.StartDrag("a"))

	f.sb.SetItems(testItems()[1:])
	assert.False(t, f.sb.Dragging())
}

func TestKeyboardNavigation(t *testing.T) {
	f := newFixture(t, Props{})

	f.sb.SelectNext()
	assert.Equal(t, "a", f.sb.Selected())
	f.sb.SelectNext()
	f.sb.ExpandSelected()
	assert.True(t, f.sb.IsExpanded("b"))
	f.sb.ExpandSelected()
	assert.Equal(t, "b1", f.sb.Selected())

	f.sb.CollapseSelected()
	assert.Equal(t, "b", f.sb.Selected())
	f.sb.CollapseSelected()
	assert.False(t, f.sb.IsExpanded("b"))

	f.sb.SelectLast()
	assert.Equal(t, "c", f.sb.Selected())
	f.sb.SelectNext()
	assert.Equal(t, "c", f.sb.Selected())
	f.sb.SelectFirst()
	assert.Equal(t, "a", f.sb.Selected())
}

func TestKeyboardMoves(t *testing.T) {
	f := newFixture(t, Props{SelectedItemID: "c"})

	require.True(t, f.sb.MoveSelectedUp())
	assert.Equal(t, []string{"a", "c", "b"}, visibleIDs(f.sb))

	require.True(t, f.sb.IndentSelected())
	assert.True(t, f.sb.IsExpanded("a"))
	assert.Equal(t, []string{"a", "c", "b"}, visibleIDs(f.sb))
	moved, _ := f.sb.Item("c")
	assert.Equal(t, "a", moved.ParentID)

	require.True(t, f.sb.OutdentSelected())
	moved, _ = f.sb.Item("c")
	assert.Equal(t, "", moved.ParentID)

	require.True(t, f.sb.MoveSelectedDown())
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(f.sb))
	assert.False(t, f.sb.MoveSelectedDown())
	assert.Len(t, f.rec.items, 4)
}

func TestPanels(t *testing.T) {
	panels := []model.Panel{{Label: "One", Value: "one"}, {Label: "Two", Value: "two"}}
	f := newFixture(t, Props{Panels: panels})

	assert.Equal(t, "one", f.sb.SelectedPanel())
	assert.Equal(t, "One", f.sb.SelectedPanelLabel())

	f.sb.CyclePanel(-1)
	assert.Equal(t, "two", f.sb.SelectedPanel())
	f.sb.CyclePanel(1)
	f.sb.SelectPanel("missing")
	f.sb.SelectPanel("one")

	assert.Equal(t, []string{"two", "one"}, f.rec.panels)
}

func TestPositionAndCollapse(t *testing.T) {
	f := newFixture(t, Props{})
	assert.Equal(t, model.PositionLeft, f.sb.Position())

	f.sb.SetPosition(model.PositionRight)
	f.sb.SetPosition(model.PositionRight)
	f.sb.SetPosition("top")
	assert.Equal(t, []model.SidebarPosition{model.PositionRight}, f.rec.positions)

	require.True(t, f.sb.StartDrag("a"))
	f.sb.ToggleCollapsed()
	assert.True(t, f.sb.Collapsed())
	assert.False(t, f.sb.Dragging())
	assert.Equal(t, DefaultCollapsedWidth, f.sb.DisplayWidth())
	assert.False(t, f.sb.StartDrag("a"))

	f.sb.ToggleCollapsed()
	assert.Equal(t, DefaultWidth, f.sb.DisplayWidth())
	assert.Equal(t, []bool{true, false}, f.rec.collapsed)
}
