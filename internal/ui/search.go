package ui

import (
	"github.com/gdamore/tcell/v2"
)

// SearchField is the filter input at the top of the sidebar. The query is
// applied on every keystroke through onChange.
type SearchField struct {
	active   bool
	query    []rune
	cursor   int
	history  *History
	onChange func(query string)
}

// NewSearchField creates a search field. history may be nil.
func NewSearchField(history *History, onChange func(string)) *SearchField {
	if history == nil {
		history = NewHistory(100)
	}
	return &SearchField{history: history, onChange: onChange}
}

// Start focuses the field, keeping the current query
func (s *SearchField) Start() {
	s.active = true
	s.cursor = len(s.query)
	s.history.Reset()
}

// Stop removes focus
func (s *SearchField) Stop() {
	s.active = false
	s.history.Reset()
}

// IsActive reports whether the field has focus
func (s *SearchField) IsActive() bool {
	return s.active
}

// Query returns the current query
func (s *SearchField) Query() string {
	return string(s.query)
}

// Cursor returns the cursor position in runes
func (s *SearchField) Cursor() int {
	return s.cursor
}

// History returns the query history
func (s *SearchField) History() *History {
	return s.history
}

// SetQuery replaces the query and moves the cursor to the end
func (s *SearchField) SetQuery(q string) {
	s.query = []rune(q)
	s.cursor = len(s.query)
	s.changed()
}

// Clear empties the query
func (s *SearchField) Clear() {
	s.SetQuery("")
}

// HandleKey handles a key while the field has focus. It returns false when
// the field gave up focus.
func (s *SearchField) HandleKey(ev *tcell.EventKey) bool {
	if !s.active {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if len(s.query) > 0 {
			s.Clear()
			return true
		}
		s.Stop()
		return false
	case tcell.KeyEnter, tcell.KeyTab:
		s.history.Add(string(s.query))
		s.Stop()
		return false
	case tcell.KeyUp:
		if !s.history.IsNavigating() {
			s.history.SetTemporary(string(s.query))
		}
		if q, ok := s.history.Previous(); ok {
			s.SetQuery(q)
		}
	case tcell.KeyDown:
		if q, ok := s.history.Next(); ok {
			s.SetQuery(q)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursor > 0 {
			s.query = append(s.query[:s.cursor-1], s.query[s.cursor:]...)
			s.cursor--
			s.changed()
		}
	case tcell.KeyDelete:
		if s.cursor < len(s.query) {
			s.query = append(s.query[:s.cursor], s.query[s.cursor+1:]...)
			s.changed()
		}
	case tcell.KeyCtrlU:
		s.Clear()
	case tcell.KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
	case tcell.KeyRight:
		if s.cursor < len(s.query) {
			s.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		s.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		s.cursor = len(s.query)
	case tcell.KeyRune:
		r := ev.Rune()
		s.query = append(s.query[:s.cursor], append([]rune{r}, s.query[s.cursor:]...)...)
		s.cursor++
		s.changed()
	}
	return true
}

func (s *SearchField) changed() {
	if s.onChange != nil {
		s.onChange(string(s.query))
	}
}

// Render draws the field on row y between x and x+width
func (s *SearchField) Render(screen *Screen, x, y, width int, placeholder string) {
	if width <= 0 {
		return
	}
	screen.Fill(x, y, width, 1, ' ', screen.SidebarStyle())
	col := screen.DrawStringLimited(x, y, "⌕ ", width, screen.SearchLabelStyle())
	avail := x + width - col
	if avail <= 0 {
		return
	}

	if len(s.query) == 0 && !s.active {
		screen.DrawStringLimited(col, y, placeholder, avail, screen.SearchPlaceholderStyle())
		return
	}

	// Scroll so the cursor stays inside the field
	text := string(s.query)
	start := 0
	for ColumnOfRune(text, s.cursor)-ColumnOfRune(text, start) >= avail && start < s.cursor {
		start++
	}
	visible := string(s.query[start:])
	screen.DrawStringLimited(col, y, visible, avail, screen.SearchTextStyle())

	if s.active {
		cx := col + ColumnOfRune(text, s.cursor) - ColumnOfRune(text, start)
		r := ' '
		if s.cursor < len(s.query) {
			r = s.query[s.cursor]
		}
		if cx < x+width {
			screen.SetCell(cx, y, r, screen.SearchCursorStyle())
		}
	}
}
