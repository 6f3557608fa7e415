package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-sidebar/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	Theme       *theme.Theme
}

// NewScreenWithTheme creates and initializes a terminal screen
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return NewScreenFrom(tcellScreen, t), nil
}

// NewScreenFrom wraps an already initialized tcell screen, such as a
// simulation screen in tests
func NewScreenFrom(s tcell.Screen, t *theme.Theme) *Screen {
	if t == nil {
		t = theme.Default()
	}
	return &Screen{tcellScreen: s, Theme: t}
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position, ignoring cells off screen
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	w, h := s.tcellScreen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws text at x, y and returns the column after the last cell
// written. Wide runes take two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x, y, r, style)
		if w == 2 {
			s.SetCell(x+1, y, ' ', style)
		}
		x += w
	}
	return x
}

// DrawStringLimited draws text truncated to maxWidth columns
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	return s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// Fill paints a rectangle with r
func (s *Screen) Fill(x, y, width, height int, r rune, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			s.SetCell(col, row, r, style)
		}
	}
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// PostEvent queues an event for the event loop. It is safe to call from
// any goroutine.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.tcellScreen.PostEvent(ev)
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync redraws every cell, used after a resize
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	return s.tcellScreen.Size()
}

// EnableMouse enables mouse support on the screen
func (s *Screen) EnableMouse() {
	s.tcellScreen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
}

// Theme-aware styles

func (s *Screen) pair(fg, bg tcell.Color) tcell.Style {
	return theme.ColorPairToStyle(fg, bg)
}

// SidebarStyle is the base style of the sidebar area
func (s *Screen) SidebarStyle() tcell.Style {
	return s.pair(s.Theme.Colors.RowText, s.Theme.Colors.SidebarBackground)
}

// BorderStyle is the style of the sidebar border
func (s *Screen) BorderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SidebarBorder, s.Theme.Colors.SidebarBackground)
}

// ResizeHandleStyle highlights the border while it is being dragged
func (s *Screen) ResizeHandleStyle() tcell.Style {
	return s.pair(s.Theme.Colors.ResizeHandle, s.Theme.Colors.SidebarBackground).Bold(true)
}

func (s *Screen) CollapseButtonStyle() tcell.Style {
	return s.pair(s.Theme.Colors.CollapseButton, s.Theme.Colors.SidebarBackground).Bold(true)
}

func (s *Screen) HeaderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.HeaderTitle, s.Theme.Colors.SidebarBackground).Bold(true)
}

func (s *Screen) HeaderArrowStyle() tcell.Style {
	return s.pair(s.Theme.Colors.HeaderArrow, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) SearchLabelStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchLabel, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) SearchTextStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchText, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) SearchPlaceholderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchPlaceholder, s.Theme.Colors.SidebarBackground).Italic(true)
}

func (s *Screen) SearchCursorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SidebarBackground, s.Theme.Colors.SearchCursor)
}

// RowStyle is the style of an unselected row
func (s *Screen) RowStyle() tcell.Style {
	return s.pair(s.Theme.Colors.RowText, s.Theme.Colors.SidebarBackground)
}

// RowSelectedStyle is the style of the selected row
func (s *Screen) RowSelectedStyle() tcell.Style {
	return s.pair(s.Theme.Colors.RowSelected, s.Theme.Colors.RowSelectedBg).Bold(true)
}

// RowDraggingStyle dims the row being dragged by blending its text into the
// background
func (s *Screen) RowDraggingStyle() tcell.Style {
	fg := theme.Blend(s.Theme.Colors.RowDragging, s.Theme.Colors.SidebarBackground, 0.4)
	return s.pair(fg, s.Theme.Colors.SidebarBackground).Dim(true)
}

func (s *Screen) RowIndicatorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.RowIndicator, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) DropIndicatorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.DropIndicator, s.Theme.Colors.SidebarBackground).Bold(true)
}

// DropHighlightStyle marks every cell of a row that would receive an
// inside drop
func (s *Screen) DropHighlightStyle() tcell.Style {
	return s.pair(s.Theme.Colors.RowText, s.Theme.Colors.DropHighlightBg)
}

func (s *Screen) DragOverlayStyle() tcell.Style {
	return s.pair(s.Theme.Colors.DragOverlayText, s.Theme.Colors.SidebarBackground).Bold(true)
}

func (s *Screen) DragOverlayBorderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.DragOverlayBorder, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) FooterStyle() tcell.Style {
	return s.pair(s.Theme.Colors.FooterText, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) DialogStyle() tcell.Style {
	return s.pair(s.Theme.Colors.DialogText, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) DialogBorderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.DialogBorder, s.Theme.Colors.SidebarBackground)
}

func (s *Screen) DialogTitleStyle() tcell.Style {
	return s.pair(s.Theme.Colors.DialogTitle, s.Theme.Colors.SidebarBackground).Bold(true)
}

func (s *Screen) DialogSelectedStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SidebarBackground, s.Theme.Colors.DialogSelected).Bold(true)
}

// ContentStyle is the style of the main area next to the sidebar
func (s *Screen) ContentStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.ContentText)
}

func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMessage)
}

func (s *Screen) StatusModifiedStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusModified)
}

func (s *Screen) StatusTimeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusTime)
}
