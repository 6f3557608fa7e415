package ui

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-sidebar/internal/history"
)

// CommandMode manages command line input (`:command`)
type CommandMode struct {
	active  bool
	input   []rune
	cursor  int
	history *History
}

// NewCommandMode creates a new CommandMode without history persistence
func NewCommandMode() *CommandMode {
	return &CommandMode{history: NewHistory(50)}
}

// NewCommandModeWithHistory creates a CommandMode whose history is kept in
// the manager's directory. A history that fails to load starts empty.
func NewCommandModeWithHistory(manager *history.Manager) *CommandMode {
	h, err := NewHistoryWithManager(50, manager, history.CommandFile)
	if err != nil {
		h = NewHistory(50)
	}
	return &CommandMode{history: h}
}

// Start enters command mode
func (c *CommandMode) Start() {
	c.active = true
	c.input = nil
	c.cursor = 0
	c.history.Reset()
}

// Stop exits command mode
func (c *CommandMode) Stop() {
	c.active = false
}

// IsActive returns whether command mode is active
func (c *CommandMode) IsActive() bool {
	return c.active
}

// Input returns the current command input
func (c *CommandMode) Input() string {
	return strings.TrimSpace(string(c.input))
}

func (c *CommandMode) setInput(s string) {
	c.input = []rune(s)
	c.cursor = len(c.input)
}

// DeleteWordBackwards deletes the word before the cursor
func (c *CommandMode) DeleteWordBackwards() {
	pos := c.cursor
	for pos > 0 && unicode.IsSpace(c.input[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(c.input[pos-1]) {
		pos--
	}
	c.input = append(c.input[:pos], c.input[c.cursor:]...)
	c.cursor = pos
}

// HandleKey processes a key press in command mode
func (c *CommandMode) HandleKey(ev *tcell.EventKey) (command string, done bool) {
	switch ev.Key() {
	case tcell.KeyCtrlW:
		c.DeleteWordBackwards()
	case tcell.KeyEscape:
		c.Stop()
		return "", true
	case tcell.KeyEnter:
		cmd := c.Input()
		c.history.Add(cmd)
		c.Stop()
		return cmd, true
	case tcell.KeyUp:
		if !c.history.IsNavigating() {
			c.history.SetTemporary(string(c.input))
		}
		if prev, ok := c.history.Previous(); ok {
			c.setInput(prev)
		}
	case tcell.KeyDown:
		if next, ok := c.history.Next(); ok {
			c.setInput(next)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.cursor > 0 {
			c.input = append(c.input[:c.cursor-1], c.input[c.cursor:]...)
			c.cursor--
		} else if len(c.input) == 0 {
			// Backspace on an empty line leaves command mode
			c.Stop()
			return "", true
		}
	case tcell.KeyDelete:
		if c.cursor < len(c.input) {
			c.input = append(c.input[:c.cursor], c.input[c.cursor+1:]...)
		}
	case tcell.KeyLeft:
		c.cursor = max(c.cursor-1, 0)
	case tcell.KeyRight:
		c.cursor = min(c.cursor+1, len(c.input))
	case tcell.KeyHome:
		c.cursor = 0
	case tcell.KeyEnd:
		c.cursor = len(c.input)
	case tcell.KeyCtrlU:
		c.input = append([]rune(nil), c.input[c.cursor:]...)
		c.cursor = 0
	case tcell.KeyCtrlK:
		c.input = c.input[:c.cursor]
	case tcell.KeyRune:
		c.input = append(c.input[:c.cursor], append([]rune{ev.Rune()}, c.input[c.cursor:]...)...)
		c.cursor++
	}

	return "", false
}

// Render renders the command line on row y
func (c *CommandMode) Render(screen *Screen, y int) {
	if !c.active {
		return
	}
	width, _ := screen.Size()
	style := screen.StatusMessageStyle()
	screen.Fill(0, y, width, 1, ' ', style)

	x := screen.DrawString(0, y, ":", style.Bold(true))
	for i, r := range c.input {
		s := style
		if i == c.cursor {
			s = s.Reverse(true)
		}
		x = screen.DrawString(x, y, string(r), s)
	}
	if c.cursor >= len(c.input) {
		screen.SetCell(x, y, ' ', style.Reverse(true))
	}
}
