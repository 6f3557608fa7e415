package ui

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
)

// KeyBindingInfo represents a keybinding for display
type KeyBindingInfo interface {
	GetKey() rune
	GetDescription() string
}

// PendingKeyBindingInfo is a prefix key that waits for a second key
type PendingKeyBindingInfo interface {
	KeyBindingInfo
	GetSequences() map[rune]string
}

// HelpScreen formats the keybindings for display
type HelpScreen struct {
	keybindings []KeyBindingInfo
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// Lines returns the help text, one entry per line
func (h *HelpScreen) Lines() []string {
	result := []string{"Keybindings:", ""}

	for _, kb := range h.keybindings {
		result = append(result, fmt.Sprintf("  %c   %s", kb.GetKey(), kb.GetDescription()))
		pkb, ok := kb.(PendingKeyBindingInfo)
		if !ok {
			continue
		}
		seqs := pkb.GetSequences()
		keys := make([]rune, 0, len(seqs))
		for k := range seqs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			result = append(result, fmt.Sprintf("    %c%c  %s", pkb.GetKey(), k, seqs[k]))
		}
	}

	return append(result,
		"",
		"Special Keys:",
		"  Arrows       Navigate",
		"  Shift+Arrow  Move item up/down, indent/outdent",
		"  Ctrl+Arrow   Resize sidebar (Ctrl+Shift for large steps)",
		"  Tab          Focus search",
		"  Ctrl+S       Save",
		"  Escape       Cancel drag or close dialog",
		"",
		"Mouse:",
		"  Click a row to select it, drag it to move it.",
		"  Drag the border to resize the sidebar.",
	)
}

// Overlay is a full-screen text panel closed with Escape, q or ?
type Overlay struct {
	visible bool
	title   string
	lines   []string
	offset  int
}

// NewOverlay creates a hidden overlay
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Show displays lines under title
func (o *Overlay) Show(title string, lines []string) {
	o.visible = true
	o.title = title
	o.lines = lines
	o.offset = 0
}

// Hide closes the overlay
func (o *Overlay) Hide() {
	o.visible = false
}

// IsVisible reports whether the overlay is shown
func (o *Overlay) IsVisible() bool {
	return o.visible
}

// HandleKey scrolls or closes the overlay
func (o *Overlay) HandleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q', ev.Rune() == '?':
		o.Hide()
	case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
		o.offset = min(o.offset+1, max(len(o.lines)-1, 0))
	case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
		o.offset = max(o.offset-1, 0)
	}
}

// Render draws the overlay
func (o *Overlay) Render(screen *Screen) {
	if !o.visible {
		return
	}
	width, height := screen.Size()
	box := Box{X: 2, Y: 1, Width: width - 4, Height: min(len(o.lines)+4, height-2)}
	box.Draw(screen, " "+o.title+" ")
	for i, line := range o.lines[min(o.offset, len(o.lines)):] {
		y := box.Y + 2 + i
		if y >= box.Y+box.Height-1 {
			break
		}
		screen.DrawStringLimited(box.X+2, y, line, box.Width-4, screen.DialogStyle())
	}
}

// Box is a bordered rectangle used by dialogs
type Box struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell x, y lies inside the box
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Draw clears the box and draws its border and title
func (b Box) Draw(screen *Screen, title string) {
	if b.Width < 2 || b.Height < 2 {
		return
	}
	border := screen.DialogBorderStyle()
	screen.Fill(b.X, b.Y, b.Width, b.Height, ' ', screen.DialogStyle())
	right, bottom := b.X+b.Width-1, b.Y+b.Height-1
	for x := b.X + 1; x < right; x++ {
		screen.SetCell(x, b.Y, '─', border)
		screen.SetCell(x, bottom, '─', border)
	}
	for y := b.Y + 1; y < bottom; y++ {
		screen.SetCell(b.X, y, '│', border)
		screen.SetCell(right, y, '│', border)
	}
	screen.SetCell(b.X, b.Y, '┌', border)
	screen.SetCell(right, b.Y, '┐', border)
	screen.SetCell(b.X, bottom, '└', border)
	screen.SetCell(right, bottom, '┘', border)
	if title != "" {
		screen.DrawStringLimited(b.X+2, b.Y, title, b.Width-4, screen.DialogTitleStyle())
	}
}
