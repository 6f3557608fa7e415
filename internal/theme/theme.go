package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	// Sidebar frame
	SidebarBackground tcell.Color
	SidebarBorder     tcell.Color
	ResizeHandle      tcell.Color
	CollapseButton    tcell.Color

	// Header: panel selector
	HeaderTitle tcell.Color
	HeaderArrow tcell.Color

	// Search field
	SearchLabel       tcell.Color
	SearchText        tcell.Color
	SearchPlaceholder tcell.Color
	SearchCursor      tcell.Color

	// Tree rows
	RowText           tcell.Color
	RowSelected       tcell.Color
	RowSelectedBg     tcell.Color
	RowDragging       tcell.Color
	RowIndicator      tcell.Color
	RowIcon           tcell.Color
	DropIndicator     tcell.Color
	DropHighlightBg   tcell.Color
	DragOverlayText   tcell.Color
	DragOverlayBorder tcell.Color

	// Footer and settings dialog
	FooterText     tcell.Color
	DialogBorder   tcell.Color
	DialogTitle    tcell.Color
	DialogText     tcell.Color
	DialogSelected tcell.Color

	// Main content and status line
	ContentText    tcell.Color
	StatusMessage  tcell.Color
	StatusModified tcell.Color
	StatusTime     tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	d := tcell.ColorDefault
	return &Theme{
		Name: "default",
		Colors: Colors{
			SidebarBackground: d,
			SidebarBorder:     d,
			ResizeHandle:      d,
			CollapseButton:    d,
			HeaderTitle:       d,
			HeaderArrow:       d,
			SearchLabel:       d,
			SearchText:        d,
			SearchPlaceholder: tcell.ColorGray,
			SearchCursor:      d,
			RowText:           d,
			RowSelected:       d,
			RowSelectedBg:     d,
			RowDragging:       tcell.ColorGray,
			RowIndicator:      d,
			RowIcon:           d,
			DropIndicator:     d,
			DropHighlightBg:   d,
			DragOverlayText:   d,
			DragOverlayBorder: d,
			FooterText:        d,
			DialogBorder:      d,
			DialogTitle:       d,
			DialogText:        d,
			DialogSelected:    d,
			ContentText:       d,
			StatusMessage:     d,
			StatusModified:    d,
			StatusTime:        d,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			SidebarBackground: HexToColor("#16161e"), // Darker background
			SidebarBorder:     HexToColor("#3b4261"),
			ResizeHandle:      HexToColor("#565f89"), // Comment gray
			CollapseButton:    HexToColor("#7dcfff"), // Cyan
			HeaderTitle:       HexToColor("#bb9af7"), // Magenta
			HeaderArrow:       HexToColor("#7dcfff"),
			SearchLabel:       HexToColor("#bb9af7"),
			SearchText:        HexToColor("#c0caf5"), // Light gray-blue
			SearchPlaceholder: HexToColor("#565f89"),
			SearchCursor:      HexToColor("#7aa2f7"), // Blue
			RowText:           HexToColor("#c0caf5"),
			RowSelected:       HexToColor("#1a1b26"),
			RowSelectedBg:     HexToColor("#7aa2f7"),
			RowDragging:       HexToColor("#565f89"),
			RowIndicator:      HexToColor("#7dcfff"),
			RowIcon:           HexToColor("#9aa5ce"),
			DropIndicator:     HexToColor("#9ece6a"), // Green
			DropHighlightBg:   HexToColor("#2e3c64"),
			DragOverlayText:   HexToColor("#e0af68"), // Yellow
			DragOverlayBorder: HexToColor("#e0af68"),
			FooterText:        HexToColor("#9aa5ce"),
			DialogBorder:      HexToColor("#7dcfff"),
			DialogTitle:       HexToColor("#bb9af7"),
			DialogText:        HexToColor("#c0caf5"),
			DialogSelected:    HexToColor("#9ece6a"),
			ContentText:       HexToColor("#a9b1d6"),
			StatusMessage:     HexToColor("#9ece6a"),
			StatusModified:    HexToColor("#f7768e"), // Red
			StatusTime:        HexToColor("#565f89"),
		},
	}
}
