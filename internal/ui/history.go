package ui

import (
	"log"

	"github.com/pstuifzand/tui-sidebar/internal/history"
)

// History keeps previous search queries and lets the user walk through
// them with the arrow keys
type History struct {
	entries      []string
	currentIndex int // -1 when not navigating
	maxEntries   int
	temporary    string // input saved before navigation started
	manager      *history.Manager
	filename     string
}

// NewHistory creates an in-memory history
func NewHistory(maxEntries int) *History {
	return &History{currentIndex: -1, maxEntries: maxEntries}
}

// NewHistoryWithManager creates a history backed by a file in the manager's
// directory. A load error still returns a usable, empty history.
func NewHistoryWithManager(maxEntries int, manager *history.Manager, filename string) (*History, error) {
	h := NewHistory(maxEntries)
	h.manager = manager
	h.filename = filename

	entries, err := manager.Load(filename)
	if err != nil {
		return h, err
	}
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
	h.entries = entries
	return h, nil
}

// Add appends entry, skipping blanks and repeats of the latest entry
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		h.Reset()
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
	h.Reset()

	if h.manager != nil && h.filename != "" {
		if err := h.manager.Save(h.filename, h.entries); err != nil {
			log.Printf("Failed to save %s: %v", h.filename, err)
		}
	}
}

// Previous steps back to an older entry
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.currentIndex == -1:
		h.currentIndex = len(h.entries) - 1
	case h.currentIndex > 0:
		h.currentIndex--
	default:
		return h.entries[0], true
	}
	return h.entries[h.currentIndex], true
}

// Next steps forward; past the newest entry it returns the input that was
// being typed before navigation started
func (h *History) Next() (string, bool) {
	if h.currentIndex == -1 {
		return "", false
	}
	if h.currentIndex < len(h.entries)-1 {
		h.currentIndex++
		return h.entries[h.currentIndex], true
	}
	tmp := h.temporary
	h.Reset()
	return tmp, true
}

// SetTemporary stores the current input before the first Previous
func (h *History) SetTemporary(input string) {
	h.temporary = input
}

// IsNavigating reports whether Previous has been called since the last Reset
func (h *History) IsNavigating() bool {
	return h.currentIndex != -1
}

// Reset stops navigating
func (h *History) Reset() {
	h.currentIndex = -1
	h.temporary = ""
}

// Entries returns a copy of the entries, oldest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
