// Package sidebar is the controller behind the navigation sidebar. It owns
// search, expansion, selection and drag state, and reports every change the
// host has to persist through Callbacks.
package sidebar

import (
	"time"

	"github.com/pstuifzand/tui-sidebar/internal/dnd"
	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/tree"
)

// Widths are terminal columns
const (
	DefaultWidth          = 28
	DefaultMinWidth       = 20
	DefaultMaxWidth       = 50
	DefaultCollapsedWidth = 4
	DefaultPlaceholder    = "Type to filter"
)

// Props are the inputs supplied by the host
type Props struct {
	Items          []model.Item
	Panels         []model.Panel
	SelectedPanel  string
	SelectedItemID string
	Position       model.SidebarPosition

	Width          int
	MinWidth       int
	MaxWidth       int
	CollapsedWidth int
	Collapsed      bool

	SearchPlaceholder string
	AutoExpandDelay   time.Duration
	ResizeStep        int
	ResizeStepLarge   int
}

func (p *Props) applyDefaults() {
	if p.Position == "" {
		p.Position = model.PositionLeft
	}
	if p.MinWidth <= 0 {
		p.MinWidth = DefaultMinWidth
	}
	if p.MaxWidth <= 0 {
		p.MaxWidth = DefaultMaxWidth
	}
	if p.MaxWidth < p.MinWidth {
		p.MaxWidth = p.MinWidth
	}
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.CollapsedWidth <= 0 {
		p.CollapsedWidth = DefaultCollapsedWidth
	}
	if p.SearchPlaceholder == "" {
		p.SearchPlaceholder = DefaultPlaceholder
	}
	if p.AutoExpandDelay <= 0 {
		p.AutoExpandDelay = dnd.DefaultAutoExpandDelay
	}
	if p.ResizeStep <= 0 {
		p.ResizeStep = 1
	}
	if p.ResizeStepLarge <= 0 {
		p.ResizeStepLarge = 5
	}
}

// Callbacks notify the host of changes. Every field is optional.
type Callbacks struct {
	OnItemsChange     func(items []model.Item)
	OnItemSelect      func(item model.Item)
	OnPanelChange     func(value string)
	OnWidthChange     func(width int)
	OnCollapsedChange func(collapsed bool)
	OnPositionChange  func(pos model.SidebarPosition)
	// OnDragChange fires whenever the drag triple changes, for redraws
	OnDragChange func(state dnd.State)
}

// Options wires the sidebar to its host-side collaborators
type Options struct {
	Scheduler dnd.Scheduler
	Viewport  dnd.Viewport
}

// Sidebar is the navigation sidebar controller. It is not safe for
// concurrent use; the host calls it from its event loop only.
type Sidebar struct {
	props Props
	cb    Callbacks

	index     *tree.Index
	projector tree.Projector
	expanded  *tree.ExpandedSet
	query     string
	selected  string

	tracker *dnd.Tracker
	auto    *dnd.AutoExpander
	resize  *ResizeGesture
}

// New creates a sidebar controller
func New(props Props, cb Callbacks, opts Options) *Sidebar {
	props.applyDefaults()
	props.Width = clamp(props.Width, props.MinWidth, props.MaxWidth)
	props.Items = model.CloneItems(props.Items)

	s := &Sidebar{
		props:    props,
		cb:       cb,
		index:    tree.NewIndex(props.Items),
		expanded: tree.NewExpandedSet(),
		selected: props.SelectedItemID,
	}
	s.tracker = dnd.NewTracker(dnd.TrackerOptions{
		Viewport:    opts.Viewport,
		HasChildren: s.HasChildren,
		OnDrop:      s.drop,
		OnChange:    s.dragChanged,
	})
	if opts.Scheduler != nil {
		s.auto = dnd.NewAutoExpander(dnd.AutoExpandOptions{
			Scheduler:   opts.Scheduler,
			Delay:       props.AutoExpandDelay,
			HasChildren: s.HasChildren,
			IsExpanded:  s.expanded.Has,
			Expand:      func(id string) { s.expanded.Add(id) },
			Current:     s.tracker.State,
		})
	}
	return s
}

// SetProps replaces the host inputs. The selected item follows
// SelectedItemID when it is set and differs from the current selection.
func (s *Sidebar) SetProps(props Props) {
	props.applyDefaults()
	props.Width = clamp(props.Width, props.MinWidth, props.MaxWidth)
	items := props.Items
	props.Items = s.props.Items
	s.props = props
	s.SetItems(items)
	if props.SelectedItemID != "" && props.SelectedItemID != s.selected {
		s.selected = props.SelectedItemID
	}
}

// Props returns the current inputs, including local changes such as width
func (s *Sidebar) Props() Props {
	p := s.props
	p.Items = model.CloneItems(p.Items)
	return p
}

// SetItems replaces the item list without notifying the host
func (s *Sidebar) SetItems(items []model.Item) {
	s.props.Items = model.CloneItems(items)
	s.index = tree.NewIndex(s.props.Items)
	if active := s.tracker.State().ActiveID; active != "" && !s.index.Has(active) {
		s.tracker.Cancel()
	}
}

// Items returns a copy of the current item list
func (s *Sidebar) Items() []model.Item {
	return model.CloneItems(s.props.Items)
}

// Visible returns the rows to render, in display order
func (s *Sidebar) Visible() []*model.TreeNode {
	return s.projector.Visible(s.props.Items, s.expanded, s.query)
}

// DragState returns the drag triple for drop-indicator rendering
func (s *Sidebar) DragState() dnd.State {
	return s.tracker.State()
}

// Expanded returns the ids of every expanded item, sorted
func (s *Sidebar) Expanded() []string {
	return s.expanded.IDs()
}

// IsExpanded reports whether id is expanded
func (s *Sidebar) IsExpanded(id string) bool {
	return s.expanded.Has(id)
}

// HasChildren reports whether any item names id as its parent
func (s *Sidebar) HasChildren(id string) bool {
	return s.index.HasChildren(id)
}

// Item returns the item with the given id
func (s *Sidebar) Item(id string) (model.Item, bool) {
	return s.index.Item(id)
}

// Query returns the search query
func (s *Sidebar) Query() string {
	return s.query
}

// SetSearch replaces the search query. The query is used verbatim.
func (s *Sidebar) SetSearch(query string) {
	s.query = query
}

// Placeholder is the hint shown in an empty search field
func (s *Sidebar) Placeholder() string {
	return s.props.SearchPlaceholder
}

// Selected returns the selected item id
func (s *Sidebar) Selected() string {
	return s.selected
}

// Toggle flips the expansion of id
func (s *Sidebar) Toggle(id string) {
	s.expanded.Toggle(id)
}

// Expand opens id
func (s *Sidebar) Expand(id string) {
	s.expanded.Add(id)
}

// Collapse closes id
func (s *Sidebar) Collapse(id string) {
	s.expanded.Remove(id)
}

// ExpandAll opens every item that has children
func (s *Sidebar) ExpandAll() {
	for _, item := range s.props.Items {
		if s.HasChildren(item.ID) {
			s.expanded.Add(item.ID)
		}
	}
}

// CollapseAll closes every item
func (s *Sidebar) CollapseAll() {
	for _, id := range s.expanded.IDs() {
		s.expanded.Remove(id)
	}
}

// Select marks id as selected and notifies the host
func (s *Sidebar) Select(id string) {
	item, ok := s.index.Item(id)
	if !ok {
		return
	}
	s.selected = id
	if s.cb.OnItemSelect != nil {
		s.cb.OnItemSelect(item)
	}
}

// Click toggles a container and selects the clicked item
func (s *Sidebar) Click(id string) {
	if s.HasChildren(id) {
		s.Toggle(id)
	}
	s.Select(id)
}

// Close cancels the pending auto-expand timer and any gesture in progress
func (s *Sidebar) Close() {
	if s.auto != nil {
		s.auto.Close()
	}
	s.tracker.Cancel()
	if s.resize != nil {
		s.resize.End()
	}
}

func (s *Sidebar) applyItems(items []model.Item) {
	s.SetItems(items)
	if s.cb.OnItemsChange != nil {
		s.cb.OnItemsChange(model.CloneItems(items))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
