package ui

import (
	"github.com/mattn/go-runewidth"
)

// Widths here are display columns, not bytes or runes.

// RuneWidth returns the display width of a single rune. Control and
// combining characters are zero wide.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// StringWidth returns the display width of a string
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth cuts s so it fits within maxWidth columns without
// splitting a wide rune
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// TruncateWithEllipsis cuts s to maxWidth columns, ending in "…" when
// anything was removed
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return TruncateToWidth(s, maxWidth)
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadToWidth pads s with spaces to width columns
func PadToWidth(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// ColumnOfRune returns the display column at which rune index i starts
func ColumnOfRune(s string, i int) int {
	runes := []rune(s)
	if i > len(runes) {
		i = len(runes)
	}
	return runewidth.StringWidth(string(runes[:max(i, 0)]))
}
