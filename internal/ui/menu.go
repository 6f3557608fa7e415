package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/sidebar"
)

// MenuOption is one choice in a Menu
type MenuOption struct {
	Label string
	Value string
}

// Menu is a small modal list of choices. It backs the panel selector and
// the settings dialog.
type Menu struct {
	title    string
	options  []MenuOption
	cursor   int
	active   bool
	onSelect func(value string)
	box      Box
}

// NewMenu creates a hidden menu
func NewMenu(title string, onSelect func(string)) *Menu {
	return &Menu{title: title, onSelect: onSelect}
}

// Open shows the menu with the cursor on current
func (m *Menu) Open(options []MenuOption, current string) {
	m.options = options
	m.cursor = 0
	for i, o := range options {
		if o.Value == current {
			m.cursor = i
		}
	}
	m.active = len(options) > 0
}

// Close hides the menu
func (m *Menu) Close() {
	m.active = false
}

// IsActive reports whether the menu is shown
func (m *Menu) IsActive() bool {
	return m.active
}

// Current returns the option under the cursor
func (m *Menu) Current() (MenuOption, bool) {
	if m.cursor < 0 || m.cursor >= len(m.options) {
		return MenuOption{}, false
	}
	return m.options[m.cursor], true
}

// HandleKey handles a key while the menu is open
func (m *Menu) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.Close()
	case tcell.KeyEnter:
		m.choose(m.cursor)
	case tcell.KeyUp:
		m.move(-1)
	case tcell.KeyDown:
		m.move(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			m.move(-1)
		case 'j':
			m.move(1)
		case 'q':
			m.Close()
		case ' ':
			m.choose(m.cursor)
		}
	}
}

// HandleMouse chooses the clicked option; a click outside closes the menu
func (m *Menu) HandleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if !m.box.Contains(x, y) {
		m.Close()
		return
	}
	if i := y - m.box.Y - 1; i >= 0 && i < len(m.options) {
		m.choose(i)
	}
}

func (m *Menu) move(delta int) {
	if n := len(m.options); n > 0 {
		m.cursor = ((m.cursor+delta)%n + n) % n
	}
}

func (m *Menu) choose(i int) {
	if i < 0 || i >= len(m.options) {
		return
	}
	value := m.options[i].Value
	m.Close()
	if m.onSelect != nil {
		m.onSelect(value)
	}
}

// Render draws the menu anchored at x, y
func (m *Menu) Render(screen *Screen, x, y int) {
	if !m.active {
		return
	}
	width := StringWidth(m.title) + 4
	for _, o := range m.options {
		width = max(width, StringWidth(o.Label)+6)
	}
	sw, sh := screen.Size()
	x = max(min(x, sw-width), 0)
	y = max(min(y, sh-len(m.options)-2), 0)

	m.box = Box{X: x, Y: y, Width: width, Height: len(m.options) + 2}
	m.box.Draw(screen, " "+m.title+" ")
	for i, o := range m.options {
		style := screen.DialogStyle()
		marker := "  "
		if i == m.cursor {
			style = screen.DialogSelectedStyle()
			marker = "› "
		}
		screen.Fill(x+1, y+1+i, width-2, 1, ' ', style)
		screen.DrawStringLimited(x+2, y+1+i, marker+o.Label, width-4, style)
	}
}

// PanelOptions lists the sidebar's panels as menu options
func PanelOptions(sb *sidebar.Sidebar) []MenuOption {
	panels := sb.Panels()
	out := make([]MenuOption, len(panels))
	for i, p := range panels {
		out[i] = MenuOption{Label: p.Label, Value: p.Value}
	}
	return out
}

// PositionOptions are the choices of the settings dialog
func PositionOptions() []MenuOption {
	return []MenuOption{
		{Label: "Sidebar on the left", Value: string(model.PositionLeft)},
		{Label: "Sidebar on the right", Value: string(model.PositionRight)},
	}
}
