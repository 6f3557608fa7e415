package model

// DropPosition classifies where within a hovered row a dragged item would land
type DropPosition int

const (
	DropNone DropPosition = iota
	DropBefore
	DropAfter
	DropInside
)

func (p DropPosition) String() string {
	switch p {
	case DropBefore:
		return "before"
	case DropAfter:
		return "after"
	case DropInside:
		return "inside"
	default:
		return "none"
	}
}

// ParseDropPosition parses the textual form produced by String.
// Unknown values map to DropNone.
func ParseDropPosition(s string) DropPosition {
	switch s {
	case "before":
		return DropBefore
	case "after":
		return DropAfter
	case "inside":
		return DropInside
	default:
		return DropNone
	}
}

// SidebarPosition is the side of the screen the sidebar is docked to
type SidebarPosition string

const (
	PositionLeft  SidebarPosition = "left"
	PositionRight SidebarPosition = "right"
)

// ParseSidebarPosition returns PositionRight for "right" and PositionLeft otherwise
func ParseSidebarPosition(s string) SidebarPosition {
	if s == string(PositionRight) {
		return PositionRight
	}
	return PositionLeft
}
