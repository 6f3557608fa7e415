package ui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-sidebar/internal/history"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runes(s string) []*tcell.EventKey {
	var out []*tcell.EventKey
	for _, r := range s {
		out = append(out, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return out
}

func TestSearchFieldTyping(t *testing.T) {
	var queries []string
	s := NewSearchField(nil, func(q string) { queries = append(queries, q) })
	s.Start()

	for _, ev := range runes("réa") {
		assert.True(t, s.HandleKey(ev))
	}
	s.HandleKey(key(tcell.KeyLeft))
	s.HandleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, "ra", s.Query())
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, []string{"r", "ré", "réa", "ra"}, queries)

	assert.False(t, s.HandleKey(key(tcell.KeyEnter)))
	assert.False(t, s.IsActive())
	assert.Equal(t, "ra", s.Query(), "leaving the field keeps the filter")
	assert.Equal(t, []string{"ra"}, s.History().Entries())
}

func TestSearchFieldEscapeClearsThenLeaves(t *testing.T) {
	s := NewSearchField(nil, nil)
	s.Start()
	for _, ev := range runes("ai") {
		s.HandleKey(ev)
	}

	assert.True(t, s.HandleKey(key(tcell.KeyEscape)))
	assert.Equal(t, "", s.Query())
	assert.False(t, s.HandleKey(key(tcell.KeyEscape)))
	assert.False(t, s.IsActive())
}

func TestSearchFieldHistory(t *testing.T) {
	h := NewHistory(10)
	h.Add("sales")
	h.Add("data")
	s := NewSearchField(h, nil)
	s.Start()
	s.HandleKey(runes("x")[0])

	s.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, "data", s.Query())
	s.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, "sales", s.Query())
	s.HandleKey(key(tcell.KeyDown))
	s.HandleKey(key(tcell.KeyDown))
	assert.Equal(t, "x", s.Query(), "past the newest entry the typed input returns")
}

func TestHistoryPersists(t *testing.T) {
	dir := t.TempDir()
	m, err := history.NewManager(dir)
	require.NoError(t, err)

	h, err := NewHistoryWithManager(2, m, history.SearchFile)
	require.NoError(t, err)
	h.Add("one")
	h.Add("two")
	h.Add("two")
	h.Add("three")

	assert.FileExists(t, filepath.Join(dir, history.SearchFile))
	reloaded, err := NewHistoryWithManager(2, m, history.SearchFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three"}, reloaded.Entries())
}

func TestCommandMode(t *testing.T) {
	c := NewCommandMode()
	c.Start()
	for _, ev := range runes("set position left") {
		c.HandleKey(ev)
	}
	c.HandleKey(key(tcell.KeyCtrlW))
	for _, ev := range runes("right") {
		c.HandleKey(ev)
	}

	cmd, done := c.HandleKey(key(tcell.KeyEnter))
	assert.True(t, done)
	assert.Equal(t, "set position right", cmd)
	assert.False(t, c.IsActive())

	c.Start()
	c.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, "set position right", c.Input())

	c.Start()
	cmd, done = c.HandleKey(key(tcell.KeyBackspace))
	assert.True(t, done, "backspace on an empty line leaves command mode")
	assert.Empty(t, cmd)
}

func TestMenu(t *testing.T) {
	var chosen []string
	m := NewMenu("Panel", func(v string) { chosen = append(chosen, v) })
	m.Open([]MenuOption{{"One", "one"}, {"Two", "two"}, {"Three", "three"}}, "two")

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "two", cur.Value)

	m.HandleKey(key(tcell.KeyDown))
	m.HandleKey(key(tcell.KeyDown))
	m.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, []string{"one"}, chosen, "cursor wraps around")
	assert.False(t, m.IsActive())

	m.Open(PositionOptions(), "right")
	m.HandleKey(key(tcell.KeyEscape))
	assert.False(t, m.IsActive())
	assert.Len(t, chosen, 1)
}

func TestMenuMouse(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(40, 12)
	defer sim.Fini()
	screen := NewScreenFrom(sim, nil)

	var chosen string
	m := NewMenu("Settings", func(v string) { chosen = v })
	m.Open(PositionOptions(), "left")
	m.Render(screen, 2, 2)

	m.HandleMouse(tcell.NewEventMouse(5, 4, tcell.Button1, 0))
	assert.Equal(t, "right", chosen)

	m.Open(PositionOptions(), "left")
	m.Render(screen, 2, 2)
	m.HandleMouse(tcell.NewEventMouse(39, 11, tcell.Button1, 0))
	assert.False(t, m.IsActive(), "click outside closes")
}

func TestMessageLogger(t *testing.T) {
	ml := NewMessageLogger(2)
	at := time.Date(2026, 3, 4, 9, 5, 7, 0, time.UTC)
	ml.Add("Saved", at)
	ml.Add("", at)
	ml.Add("Moved", at.Add(time.Minute))
	ml.Add("Reloaded", at.Add(2*time.Minute))

	assert.Equal(t, 2, ml.Count())
	assert.Equal(t, []string{"09:07  Reloaded", "09:06  Moved"}, ml.Lines("%H:%M"))
}

func TestHelpLinesIncludeSequences(t *testing.T) {
	h := NewHelpScreen()
	h.SetKeybindings([]KeyBindingInfo{
		testBinding{key: 'j', desc: "Down"},
		testPending{testBinding{key: 'z', desc: "Fold"}, map[rune]string{'o': "Open", 'c': "Close"}},
	})
	lines := h.Lines()
	assert.Contains(t, lines, "  j   Down")
	assert.Contains(t, lines, "    zc  Close")
	assert.Contains(t, lines, "    zo  Open")
}

type testBinding struct {
	key  rune
	desc string
}

func (b testBinding) GetKey() rune           { return b.key }
func (b testBinding) GetDescription() string { return b.desc }

type testPending struct {
	testBinding
	seqs map[rune]string
}

func (p testPending) GetSequences() map[rune]string { return p.seqs }
