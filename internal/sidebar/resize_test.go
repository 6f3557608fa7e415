package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

func TestWidthClampedOnCreate(t *testing.T) {
	f := newFixture(t, Props{Width: 500})
	assert.Equal(t, DefaultMaxWidth, f.sb.Width())

	f = newFixture(t, Props{Width: 3, MinWidth: 10, MaxWidth: 40})
	assert.Equal(t, 10, f.sb.Width())
}

func TestResizeGesture(t *testing.T) {
	tests := []struct {
		name     string
		position model.SidebarPosition
		startX   int
		moves    []int
		want     []int
	}{
		{"left grows right", model.PositionLeft, 28, []int{30, 35}, []int{30, 35}},
		{"left clamps", model.PositionLeft, 28, []int{0, 100}, []int{20, 50}},
		{"right mirrors", model.PositionRight, 52, []int{50, 56}, []int{30, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Props{Position: tt.position})
			g := f.sb.BeginResize(tt.startX)
			require.NotNil(t, g)
			defer g.End()
			assert.True(t, f.sb.Resizing())

			for _, x := range tt.moves {
				g.Move(x)
			}
			assert.Equal(t, tt.want, f.rec.widths)
		})
	}
}

func TestResizeGestureEnd(t *testing.T) {
	f := newFixture(t, Props{})
	g := f.sb.BeginResize(10)
	require.NotNil(t, g)
	assert.Nil(t, f.sb.BeginResize(12), "only one resize at a time")

	g.End()
	g.End()
	assert.False(t, f.sb.Resizing())

	g.Move(40)
	assert.Empty(t, f.rec.widths)
}

func TestResizeNotAvailableWhileCollapsed(t *testing.T) {
	f := newFixture(t, Props{Collapsed: true})
	assert.Nil(t, f.sb.BeginResize(3))

	f.sb.ResizeKey(1, false)
	assert.Empty(t, f.rec.widths)
}

func TestCollapseEndsResize(t *testing.T) {
	f := newFixture(t, Props{})
	g := f.sb.BeginResize(28)
	require.NotNil(t, g)

	f.sb.ToggleCollapsed()
	assert.False(t, f.sb.Resizing())
	g.Move(35)
	assert.Empty(t, f.rec.widths)
}

func TestResizeKey(t *testing.T) {
	tests := []struct {
		name     string
		position model.SidebarPosition
		dir      int
		large    bool
		want     int
	}{
		{"left arrow right", model.PositionLeft, 1, false, 29},
		{"left arrow left", model.PositionLeft, -1, false, 27},
		{"left large", model.PositionLeft, 1, true, 33},
		{"right arrow right shrinks", model.PositionRight, 1, false, 27},
		{"right arrow left grows", model.PositionRight, -1, true, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Props{Position: tt.position})
			f.sb.ResizeKey(tt.dir, tt.large)
			assert.Equal(t, tt.want, f.sb.Width())
		})
	}
}

func TestResizeKeyClamps(t *testing.T) {
	f := newFixture(t, Props{Width: 49})
	f.sb.ResizeKey(1, true)
	f.sb.ResizeKey(1, true)
	assert.Equal(t, 50, f.sb.Width())
	assert.Equal(t, []int{50}, f.rec.widths)
}
