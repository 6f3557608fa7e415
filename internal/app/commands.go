package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/theme"
)

// handleCommand processes a command from command mode
func (a *App) handleCommand(cmd string) {
	parts := parseCommand(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "q", "quit":
		if a.dirty {
			a.SetStatus("Unsaved changes! Use :q! to force quit or :w to save")
		} else {
			a.quit = true
		}
	case "q!", "quit!":
		a.quit = true
	case "w", "write":
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
		} else {
			a.SetStatus("Saved")
		}
	case "wq", "x":
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
		} else {
			a.quit = true
		}
	case "e!":
		doc, err := a.store.Load()
		if err != nil {
			a.SetStatus("Reload failed: " + err.Error())
			return
		}
		a.applyDocument(doc)
		a.SetStatus("Reloaded from disk")
	case "help":
		a.overlay.Show("Keybindings (? to close)", a.help.Lines())
	case "messages":
		a.overlay.Show("Messages", a.messages.Lines(a.cfg.StatusTimeFormat))
	case "backups":
		a.showBackups()
	case "debug":
		a.debugMode = !a.debugMode
		if a.debugMode {
			a.SetStatus("Debug mode ON")
		} else {
			a.SetStatus("Debug mode OFF")
		}
	case "set":
		a.handleSet(parts[1:])
	case "panel":
		if len(parts) < 2 {
			a.openPanelMenu()
			return
		}
		a.sb.SelectPanel(parts[1])
	case "theme":
		if len(parts) < 2 {
			a.SetStatus("Usage: theme <name>")
			return
		}
		t, err := theme.LoadTheme(parts[1])
		if err != nil {
			a.SetStatus("Theme not found: " + parts[1])
			return
		}
		a.screen.Theme = t
		a.cfg.Theme = parts[1]
		a.configDirty = true
	case "expand-all":
		a.sb.ExpandAll()
	case "collapse-all":
		a.sb.CollapseAll()
	case "search":
		a.search.SetQuery(strings.Join(parts[1:], " "))
	default:
		a.SetStatus("Unknown command: " + parts[0])
	}
}

// handleSet handles :set position, :set width and session settings
func (a *App) handleSet(args []string) {
	if len(args) == 0 {
		all := a.cfg.GetAll()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := []string{
			"position = " + string(a.sb.Position()),
			"width = " + strconv.Itoa(a.sb.Width()),
		}
		for _, k := range keys {
			lines = append(lines, k+" = "+all[k])
		}
		a.overlay.Show("Settings", lines)
		return
	}
	if len(args) < 2 {
		a.SetStatus(args[0] + " = " + a.cfg.Get(args[0]))
		return
	}

	switch args[0] {
	case "position":
		if args[1] != string(model.PositionLeft) && args[1] != string(model.PositionRight) {
			a.SetStatus("Position must be left or right")
			return
		}
		a.sb.SetPosition(model.ParseSidebarPosition(args[1]))
	case "width":
		w, err := strconv.Atoi(args[1])
		if err != nil {
			a.SetStatus("Width must be a number")
			return
		}
		a.sb.SetWidth(w)
		a.SetStatus(fmt.Sprintf("Width %d", a.sb.Width()))
	default:
		a.cfg.Set(args[0], strings.Join(args[1:], " "))
	}
}

func (a *App) showBackups() {
	if a.backups == nil {
		a.SetStatus("Backups are disabled")
		return
	}
	backups, err := a.backups.FindBackupsForFile(a.store.FilePath)
	if err != nil {
		a.SetStatus("Failed to list backups: " + err.Error())
		return
	}
	if len(backups) == 0 {
		a.SetStatus("No backups")
		return
	}
	lines := make([]string, 0, len(backups))
	for i := len(backups) - 1; i >= 0; i-- {
		lines = append(lines, backups[i].Timestamp.Format("2006-01-02 15:04:05")+"  "+backups[i].FilePath)
	}
	a.overlay.Show("Backups", lines)
}

// parseCommand splits a command line into words. Single and double quotes
// group words; inside double quotes a backslash escapes the next character.
func parseCommand(input string) []string {
	var parts []string
	var current strings.Builder
	inWord := false
	var quote rune

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote != 0:
			switch {
			case r == quote:
				quote = 0
			case r == '\\' && quote == '"' && i+1 < len(runes):
				i++
				current.WriteRune(runes[i])
			default:
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				parts = append(parts, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		parts = append(parts, current.String())
	}
	return parts
}
