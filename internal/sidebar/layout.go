package sidebar

import (
	"slices"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

// Panels returns the panel choices
func (s *Sidebar) Panels() []model.Panel {
	return s.props.Panels
}

// SelectedPanel returns the selected panel value, defaulting to the first
func (s *Sidebar) SelectedPanel() string {
	if s.props.SelectedPanel != "" {
		return s.props.SelectedPanel
	}
	if len(s.props.Panels) > 0 {
		return s.props.Panels[0].Value
	}
	return ""
}

// SelectedPanelLabel returns the label of the selected panel
func (s *Sidebar) SelectedPanelLabel() string {
	value := s.SelectedPanel()
	for _, p := range s.props.Panels {
		if p.Value == value {
			return p.Label
		}
	}
	return value
}

// SelectPanel switches to the panel with the given value
func (s *Sidebar) SelectPanel(value string) {
	if !slices.ContainsFunc(s.props.Panels, func(p model.Panel) bool { return p.Value == value }) {
		return
	}
	if value == s.SelectedPanel() {
		return
	}
	s.props.SelectedPanel = value
	if s.cb.OnPanelChange != nil {
		s.cb.OnPanelChange(value)
	}
}

// CyclePanel selects the panel delta steps away, wrapping around
func (s *Sidebar) CyclePanel(delta int) {
	n := len(s.props.Panels)
	if n == 0 {
		return
	}
	current := slices.IndexFunc(s.props.Panels, func(p model.Panel) bool { return p.Value == s.SelectedPanel() })
	if current < 0 {
		current = 0
	}
	next := ((current+delta)%n + n) % n
	s.SelectPanel(s.props.Panels[next].Value)
}

// Position returns which side of the screen the sidebar is on
func (s *Sidebar) Position() model.SidebarPosition {
	return s.props.Position
}

// SetPosition moves the sidebar to the given side
func (s *Sidebar) SetPosition(pos model.SidebarPosition) {
	if pos != model.PositionLeft && pos != model.PositionRight {
		return
	}
	if pos == s.props.Position {
		return
	}
	s.props.Position = pos
	if s.cb.OnPositionChange != nil {
		s.cb.OnPositionChange(pos)
	}
}

// Collapsed reports whether the sidebar is folded to its narrow strip
func (s *Sidebar) Collapsed() bool {
	return s.props.Collapsed
}

// ToggleCollapsed folds or unfolds the sidebar. Folding cancels any drag,
// since the rows disappear.
func (s *Sidebar) ToggleCollapsed() {
	s.props.Collapsed = !s.props.Collapsed
	if s.props.Collapsed {
		s.tracker.Cancel()
		if s.resize != nil {
			s.resize.End()
		}
	}
	if s.cb.OnCollapsedChange != nil {
		s.cb.OnCollapsedChange(s.props.Collapsed)
	}
}

// Width returns the expanded width, regardless of collapse state
func (s *Sidebar) Width() int {
	return s.props.Width
}

// DisplayWidth returns the number of columns the sidebar occupies
func (s *Sidebar) DisplayWidth() int {
	if s.props.Collapsed {
		return s.props.CollapsedWidth
	}
	return s.props.Width
}

// SetWidth clamps width into the configured range and applies it
func (s *Sidebar) SetWidth(width int) {
	width = clamp(width, s.props.MinWidth, s.props.MaxWidth)
	if width == s.props.Width {
		return
	}
	s.props.Width = width
	if s.cb.OnWidthChange != nil {
		s.cb.OnWidthChange(width)
	}
}

// ResizeKey applies a keyboard resize from the resize handle. dir is -1 for
// the left arrow and +1 for the right arrow; large selects the large step.
// Arrows always move the handle in their direction, so a right-side sidebar
// grows on left.
func (s *Sidebar) ResizeKey(dir int, large bool) {
	if s.props.Collapsed || dir == 0 {
		return
	}
	step := s.props.ResizeStep
	if large {
		step = s.props.ResizeStepLarge
	}
	if dir < 0 {
		step = -step
	}
	if s.props.Position == model.PositionRight {
		step = -step
	}
	s.SetWidth(s.props.Width + step)
}
