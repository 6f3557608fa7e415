package ui

import (
	"github.com/pstuifzand/tui-sidebar/internal/dnd"
	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/sidebar"
	"github.com/pstuifzand/tui-sidebar/internal/theme"
)

// Fixed rows of the expanded sidebar
const (
	headerRow    = 0
	searchRow    = 1
	separatorRow = 2
	listTop      = 3
)

// Region identifies the part of the sidebar under a screen cell
type Region int

const (
	RegionNone Region = iota
	RegionCollapse
	RegionPanel
	RegionSearch
	RegionRow
	RegionResize
	RegionFooter
)

// Hit is the result of a hit test
type Hit struct {
	Region Region
	ID     string // row id for RegionRow
}

var iconGlyphs = map[model.IconType]rune{
	model.IconGrid:  '▦',
	model.IconStar:  '★',
	model.IconTag:   '◈',
	model.IconAlert: '⚠',
	model.IconUser:  '◉',
}

// IconGlyph returns the glyph drawn for an icon type
func IconGlyph(icon model.IconType) rune {
	if r, ok := iconGlyphs[icon]; ok {
		return r
	}
	return '•'
}

// SidebarView draws a sidebar controller and maps screen cells back to its
// rows. It is also the dnd.Viewport the controller measures drops against.
type SidebarView struct {
	sb        *sidebar.Sidebar
	search    *SearchField
	rowHeight int
	scroll    int

	screenWidth  int
	screenHeight int

	pointerX, pointerY int
	hasPointer         bool
}

// NewSidebarView creates a view. sb may be attached later with Attach,
// since the controller needs the view as its viewport.
func NewSidebarView(search *SearchField, rowHeight int) *SidebarView {
	if rowHeight <= 0 {
		rowHeight = 3
	}
	return &SidebarView{search: search, rowHeight: rowHeight}
}

// Attach sets the controller to draw
func (v *SidebarView) Attach(sb *sidebar.Sidebar) {
	v.sb = sb
}

// RowHeight returns the number of screen rows per item
func (v *SidebarView) RowHeight() int {
	return v.rowHeight
}

// Layout records the screen size. Render calls it; hosts call it after a
// resize so hit tests are correct before the next frame.
func (v *SidebarView) Layout(screenWidth, screenHeight int) {
	v.screenWidth = screenWidth
	v.screenHeight = screenHeight
	v.clampScroll()
}

// Left returns the first screen column of the sidebar
func (v *SidebarView) Left() int {
	if v.sb.Position() == model.PositionRight {
		return max(v.screenWidth-v.sb.DisplayWidth(), 0)
	}
	return 0
}

// Width returns the columns occupied on screen
func (v *SidebarView) Width() int {
	return min(v.sb.DisplayWidth(), v.screenWidth)
}

// ContentBounds returns the columns left for the main area
func (v *SidebarView) ContentBounds() (x, width int) {
	w := v.Width()
	if v.sb.Position() == model.PositionRight {
		return 0, v.screenWidth - w
	}
	return w, v.screenWidth - w
}

func (v *SidebarView) borderColumn() int {
	if v.sb.Position() == model.PositionRight {
		return v.Left()
	}
	return v.Left() + v.Width() - 1
}

// inner returns the columns inside the border
func (v *SidebarView) inner() (x, width int) {
	x = v.Left()
	width = v.Width() - 1
	if v.sb.Position() == model.PositionRight {
		x++
	}
	return x, max(width, 0)
}

func (v *SidebarView) collapseColumn() int {
	x, w := v.inner()
	if v.sb.Position() == model.PositionRight {
		return x
	}
	return x + w - 1
}

func (v *SidebarView) listBottom() int {
	return v.screenHeight - 1
}

func (v *SidebarView) capacity() int {
	return max((v.listBottom()-listTop)/v.rowHeight, 0)
}

// rowTop returns the screen row of the first line of visible row index i
func (v *SidebarView) rowTop(i int) int {
	return listTop + (i-v.scroll)*v.rowHeight
}

// RowBounds implements dnd.Viewport
func (v *SidebarView) RowBounds(id string) (dnd.Rect, bool) {
	if v.sb == nil || v.sb.Collapsed() {
		return dnd.Rect{}, false
	}
	i := v.sb.RowIndex(id)
	if i < 0 {
		return dnd.Rect{}, false
	}
	top := v.rowTop(i)
	if top < listTop || top >= v.listBottom() {
		return dnd.Rect{}, false
	}
	x, w := v.inner()
	return dnd.Rect{
		X:      float64(x),
		Y:      float64(top),
		Width:  float64(w),
		Height: float64(v.rowHeight),
	}, true
}

// HitTest returns what lies under the screen cell x, y
func (v *SidebarView) HitTest(x, y int) Hit {
	left := v.Left()
	if x < left || x >= left+v.Width() || y < 0 || y >= v.screenHeight {
		return Hit{}
	}
	if v.sb.Collapsed() {
		if y == headerRow {
			return Hit{Region: RegionCollapse}
		}
		return Hit{}
	}
	if x == v.borderColumn() {
		return Hit{Region: RegionResize}
	}
	switch {
	case y == headerRow && x == v.collapseColumn():
		return Hit{Region: RegionCollapse}
	case y == headerRow:
		return Hit{Region: RegionPanel}
	case y == searchRow:
		return Hit{Region: RegionSearch}
	case y == separatorRow:
		return Hit{}
	case y == v.screenHeight-1:
		return Hit{Region: RegionFooter}
	}
	i := v.scroll + (y-listTop)/v.rowHeight
	rows := v.sb.Visible()
	if i < len(rows) {
		return Hit{Region: RegionRow, ID: rows[i].ID}
	}
	return Hit{}
}

// SetPointer records where the pointer is, for the drag overlay
func (v *SidebarView) SetPointer(x, y int) {
	v.pointerX, v.pointerY, v.hasPointer = x, y, true
}

// ClearPointer hides the drag overlay
func (v *SidebarView) ClearPointer() {
	v.hasPointer = false
}

// Scroll returns the index of the first visible row
func (v *SidebarView) Scroll() int {
	return v.scroll
}

// ScrollBy moves the list by delta rows
func (v *SidebarView) ScrollBy(delta int) {
	v.scroll += delta
	v.clampScroll()
}

// EnsureVisible scrolls so that id is on screen
func (v *SidebarView) EnsureVisible(id string) {
	i := v.sb.RowIndex(id)
	if i < 0 {
		return
	}
	c := max(v.capacity(), 1)
	if i < v.scroll {
		v.scroll = i
	} else if i >= v.scroll+c {
		v.scroll = i - c + 1
	}
	v.clampScroll()
}

func (v *SidebarView) clampScroll() {
	if v.sb == nil {
		return
	}
	limit := max(len(v.sb.Visible())-v.capacity(), 0)
	v.scroll = min(max(v.scroll, 0), limit)
}

// Render draws the sidebar
func (v *SidebarView) Render(screen *Screen) {
	v.Layout(screen.Size())
	left, width := v.Left(), v.Width()
	if width <= 0 {
		return
	}
	screen.Fill(left, 0, width, v.screenHeight, ' ', screen.SidebarStyle())

	borderStyle := screen.BorderStyle()
	if v.sb.Resizing() {
		borderStyle = screen.ResizeHandleStyle()
	}
	for y := 0; y < v.screenHeight; y++ {
		screen.SetCell(v.borderColumn(), y, '│', borderStyle)
	}

	if v.sb.Collapsed() {
		v.renderCollapsed(screen)
		return
	}

	v.renderHeader(screen)
	x, w := v.inner()
	v.search.Render(screen, x, searchRow, w, v.sb.Placeholder())
	for col := x; col < x+w; col++ {
		screen.SetCell(col, separatorRow, '─', borderStyle)
	}
	v.renderRows(screen)
	screen.DrawStringLimited(x+1, v.screenHeight-1, "⚙ Settings", w-1, screen.FooterStyle())
	v.renderOverlay(screen)
}

func (v *SidebarView) renderCollapsed(screen *Screen) {
	x, w := v.inner()
	button := '»'
	if v.sb.Position() == model.PositionRight {
		button = '«'
	}
	screen.SetCell(x+w/2, headerRow, button, screen.CollapseButtonStyle())
}

func (v *SidebarView) renderHeader(screen *Screen) {
	x, w := v.inner()
	button := '«'
	labelX := x + 1
	if v.sb.Position() == model.PositionRight {
		button = '»'
		labelX = x + 2
	}
	screen.SetCell(v.collapseColumn(), headerRow, button, screen.CollapseButtonStyle())

	label := v.sb.SelectedPanelLabel()
	if label == "" {
		return
	}
	avail := x + w - 1 - labelX
	if v.sb.Position() == model.PositionRight {
		avail = x + w - labelX
	}
	col := screen.DrawStringLimited(labelX, headerRow, "▾ ", avail, screen.HeaderArrowStyle())
	screen.DrawStringLimited(col, headerRow, TruncateWithEllipsis(label, avail-2), avail-2, screen.HeaderStyle())
}

func (v *SidebarView) renderRows(screen *Screen) {
	rows := v.sb.Visible()
	drag := v.sb.DragState()
	selected := v.sb.Selected()
	bottom := v.listBottom()

	if len(rows) == 0 && v.sb.Query() != "" {
		x, w := v.inner()
		screen.DrawStringLimited(x+1, listTop, "No matches", w-1, screen.SearchPlaceholderStyle())
		return
	}

	for i := v.scroll; i < len(rows); i++ {
		top := v.rowTop(i)
		if top >= bottom {
			break
		}
		next := -1
		if i+1 < len(rows) {
			next = rows[i+1].Depth
		}
		v.renderRow(screen, rows[i], top, next, rowState{
			selected: rows[i].ID == selected,
			dragging: rows[i].ID == drag.ActiveID,
			drop:     drag.Target(rows[i].ID),
		})
	}
}

type rowState struct {
	selected bool
	dragging bool
	drop     model.DropPosition
}

func (v *SidebarView) renderRow(screen *Screen, node *model.TreeNode, top, nextDepth int, st rowState) {
	x, w := v.inner()
	bottom := v.listBottom()

	base := screen.RowStyle()
	switch {
	case st.drop == model.DropInside:
		base = screen.DropHighlightStyle()
	case st.selected:
		base = screen.RowSelectedStyle()
	}
	for line := 0; line < v.rowHeight && top+line < bottom; line++ {
		screen.Fill(x, top+line, w, 1, ' ', base)
	}

	mid := top + v.rowHeight/2
	if mid >= bottom {
		return
	}
	text := base
	if st.dragging {
		text = screen.RowDraggingStyle()
	}
	_, bg, _ := base.Decompose()

	col := x + 1 + node.Depth*2
	limit := x + w
	if col < limit {
		switch {
		case nextDepth > node.Depth:
			screen.SetCell(col, mid, '▾', screen.RowIndicatorStyle().Background(bg))
		case v.sb.HasChildren(node.ID):
			screen.SetCell(col, mid, '▸', screen.RowIndicatorStyle().Background(bg))
		}
		col += 2
	}
	if col < limit {
		iconStyle := theme.ColorPairToStyle(theme.IconColor(node.IconColor, screen.Theme.Colors.RowIcon), bg)
		col = screen.DrawString(col, mid, string(IconGlyph(node.Icon)), iconStyle) + 1
	}
	if col < limit {
		screen.DrawString(col, mid, TruncateWithEllipsis(node.Name, limit-col), text)
	}

	v.renderIndicator(screen, node, top, st.drop)
}

func (v *SidebarView) renderIndicator(screen *Screen, node *model.TreeNode, top int, pos model.DropPosition) {
	var y int
	var mark rune
	switch pos {
	case model.DropBefore:
		y, mark = top, '▔'
	case model.DropAfter:
		y, mark = top+v.rowHeight-1, '▁'
	default:
		return
	}
	if y >= v.listBottom() {
		return
	}
	x, w := v.inner()
	style := screen.DropIndicatorStyle()
	start := x + 1 + node.Depth*2
	if v.rowHeight < 3 {
		screen.SetCell(x, y, mark, style)
		return
	}
	screen.SetCell(start, y, '●', style)
	for col := start + 1; col < x+w; col++ {
		screen.SetCell(col, y, '─', style)
	}
}

// renderOverlay draws the dragged item next to the pointer
func (v *SidebarView) renderOverlay(screen *Screen) {
	drag := v.sb.DragState()
	if !drag.Dragging() || !v.hasPointer {
		return
	}
	item, ok := v.sb.Item(drag.ActiveID)
	if !ok {
		return
	}
	label := " " + string(IconGlyph(item.Icon)) + " " + TruncateWithEllipsis(item.Name, 24) + " "
	width := StringWidth(label) + 2
	x := v.pointerX + 2
	if x+width > v.screenWidth {
		x = max(v.pointerX-width-1, 0)
	}
	border := screen.DragOverlayBorderStyle()
	screen.SetCell(x, v.pointerY, '[', border)
	end := screen.DrawString(x+1, v.pointerY, label, screen.DragOverlayStyle())
	screen.SetCell(end, v.pointerY, ']', border)
}
