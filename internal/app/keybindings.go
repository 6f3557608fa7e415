package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-sidebar/internal/ui"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// PendingKeyBinding is a prefix key (like 'g' or 'z') that waits for a
// second key
type PendingKeyBinding struct {
	Prefix      rune
	Description string
	Sequences   map[rune]KeyBinding
}

// GetKey returns the prefix key
func (pkb *PendingKeyBinding) GetKey() rune {
	return pkb.Prefix
}

// GetDescription returns the description
func (pkb *PendingKeyBinding) GetDescription() string {
	return pkb.Description
}

// GetSequences returns a map of second key to description for display in help
func (pkb *PendingKeyBinding) GetSequences() map[rune]string {
	result := make(map[rune]string, len(pkb.Sequences))
	for key, binding := range pkb.Sequences {
		result[key] = binding.Description
	}
	return result
}

// InitializeKeybindings sets up the single-key bindings of normal mode
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: 'j', Description: "Select next row", Handler: func(app *App) { app.sb.SelectNext() }},
		{Key: 'k', Description: "Select previous row", Handler: func(app *App) { app.sb.SelectPrev() }},
		{Key: 'h', Description: "Collapse, or go to parent", Handler: func(app *App) { app.sb.CollapseSelected() }},
		{Key: 'l', Description: "Expand, or go to first child", Handler: func(app *App) { app.sb.ExpandSelected() }},
		{Key: 'G', Description: "Select last row", Handler: func(app *App) { app.sb.SelectLast() }},
		{Key: ' ', Description: "Toggle expansion", Handler: func(app *App) { app.sb.ToggleSelected() }},
		{Key: 'K', Description: "Move item up", Handler: func(app *App) { app.moved(app.sb.MoveSelectedUp(), "Moved up") }},
		{Key: 'J', Description: "Move item down", Handler: func(app *App) { app.moved(app.sb.MoveSelectedDown(), "Moved down") }},
		{Key: '>', Description: "Indent item", Handler: func(app *App) { app.moved(app.sb.IndentSelected(), "Indented") }},
		{Key: '<', Description: "Outdent item", Handler: func(app *App) { app.moved(app.sb.OutdentSelected(), "Outdented") }},
		{Key: '/', Description: "Search", Handler: func(app *App) { app.search.Start() }},
		{Key: '[', Description: "Resize handle left", Handler: func(app *App) { app.sb.ResizeKey(-1, false) }},
		{Key: ']', Description: "Resize handle right", Handler: func(app *App) { app.sb.ResizeKey(1, false) }},
		{Key: '{', Description: "Resize handle left, large step", Handler: func(app *App) { app.sb.ResizeKey(-1, true) }},
		{Key: '}', Description: "Resize handle right, large step", Handler: func(app *App) { app.sb.ResizeKey(1, true) }},
		{Key: 'b', Description: "Collapse or expand sidebar", Handler: func(app *App) { app.sb.ToggleCollapsed() }},
		{Key: 'p', Description: "Choose panel", Handler: func(app *App) { app.openPanelMenu() }},
		{Key: 'n', Description: "Next panel", Handler: func(app *App) { app.sb.CyclePanel(1) }},
		{Key: 'N', Description: "Previous panel", Handler: func(app *App) { app.sb.CyclePanel(-1) }},
		{Key: 's', Description: "Settings", Handler: func(app *App) { app.openSettings() }},
		{Key: '?', Description: "Help", Handler: func(app *App) { app.overlay.Show("Keybindings (? to close)", app.help.Lines()) }},
		{Key: ':', Description: "Command", Handler: func(app *App) { app.command.Start() }},
	}
}

// InitializePendingKeybindings sets up the two-key sequences
func (a *App) InitializePendingKeybindings() []PendingKeyBinding {
	return []PendingKeyBinding{
		{
			Prefix:      'g',
			Description: "Go to",
			Sequences: map[rune]KeyBinding{
				'g': {Key: 'g', Description: "First row", Handler: func(app *App) { app.sb.SelectFirst() }},
				'p': {Key: 'p', Description: "Parent", Handler: func(app *App) { app.selectParent() }},
			},
		},
		{
			Prefix:      'z',
			Description: "Fold",
			Sequences: map[rune]KeyBinding{
				'o': {Key: 'o', Description: "Open", Handler: func(app *App) { app.sb.Expand(app.sb.Selected()) }},
				'c': {Key: 'c', Description: "Close", Handler: func(app *App) { app.sb.Collapse(app.sb.Selected()) }},
				'a': {Key: 'a', Description: "Toggle", Handler: func(app *App) { app.sb.ToggleSelected() }},
				'R': {Key: 'R', Description: "Open all", Handler: func(app *App) { app.sb.ExpandAll() }},
				'M': {Key: 'M', Description: "Close all", Handler: func(app *App) { app.sb.CollapseAll() }},
			},
		},
	}
}

// GetKeybindingByKey returns the binding for key, or nil
func (a *App) GetKeybindingByKey(key rune) *KeyBinding {
	for i := range a.keybindings {
		if a.keybindings[i].Key == key {
			return &a.keybindings[i]
		}
	}
	return nil
}

// GetPendingKeyBindingByPrefix returns a pending keybinding for a prefix key
func (a *App) GetPendingKeyBindingByPrefix(prefix rune) *PendingKeyBinding {
	for i := range a.pendingKeybindings {
		if a.pendingKeybindings[i].Prefix == prefix {
			return &a.pendingKeybindings[i]
		}
	}
	return nil
}

func (a *App) helpBindings() []ui.KeyBindingInfo {
	var out []ui.KeyBindingInfo
	for i := range a.keybindings {
		out = append(out, &a.keybindings[i])
	}
	for i := range a.pendingKeybindings {
		out = append(out, &a.pendingKeybindings[i])
	}
	return out
}

// handleKeypress handles a key in normal mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.pendingKey != 0 {
		prefix := a.pendingKey
		a.pendingKey = 0
		if pkb := a.GetPendingKeyBindingByPrefix(prefix); pkb != nil && ev.Key() == tcell.KeyRune {
			if kb, ok := pkb.Sequences[ev.Rune()]; ok {
				kb.Handler(a)
			}
		}
		return
	}

	if a.handleSpecialKey(ev) {
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	r := ev.Rune()
	if a.GetPendingKeyBindingByPrefix(r) != nil {
		a.pendingKey = r
		return
	}
	if kb := a.GetKeybindingByKey(r); kb != nil {
		kb.Handler(a)
	}
}

// handleSpecialKey handles arrows and control keys. Shift+arrows move the
// selected item; Ctrl+arrows resize the sidebar.
func (a *App) handleSpecialKey(ev *tcell.EventKey) bool {
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0
	ctrl := mod&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight:
		dir := 1
		if ev.Key() == tcell.KeyLeft {
			dir = -1
		}
		switch {
		case ctrl:
			a.sb.ResizeKey(dir, shift)
		case shift && dir > 0:
			a.moved(a.sb.IndentSelected(), "Indented")
		case shift:
			a.moved(a.sb.OutdentSelected(), "Outdented")
		case dir > 0:
			a.sb.ExpandSelected()
		default:
			a.sb.CollapseSelected()
		}
	case tcell.KeyUp:
		if shift {
			a.moved(a.sb.MoveSelectedUp(), "Moved up")
		} else {
			a.sb.SelectPrev()
		}
	case tcell.KeyDown:
		if shift {
			a.moved(a.sb.MoveSelectedDown(), "Moved down")
		} else {
			a.sb.SelectNext()
		}
	case tcell.KeyHome:
		a.sb.SelectFirst()
	case tcell.KeyEnd:
		a.sb.SelectLast()
	case tcell.KeyEnter:
		if id := a.sb.Selected(); id != "" {
			a.sb.Click(id)
		}
	case tcell.KeyTab:
		a.search.Start()
	case tcell.KeyCtrlB:
		a.sb.ToggleCollapsed()
	case tcell.KeyCtrlS:
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
		} else {
			a.SetStatus("Saved")
		}
	case tcell.KeyEscape:
		switch {
		case a.mouse.Busy():
			a.mouse.Cancel()
			a.SetStatus("Move cancelled")
		case a.sb.Dragging():
			a.sb.CancelDrag()
		case a.search.Query() != "":
			a.search.Clear()
		}
	default:
		return false
	}
	return true
}

func (a *App) moved(ok bool, msg string) {
	if ok {
		a.SetStatus(msg)
	}
}

func (a *App) selectParent() {
	if item, ok := a.sb.Item(a.sb.Selected()); ok && item.ParentID != "" {
		if _, ok := a.sb.Item(item.ParentID); ok {
			a.sb.Select(item.ParentID)
		}
	}
}
