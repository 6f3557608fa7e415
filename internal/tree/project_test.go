package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "1", Name: "Stock board", Order: 0},
		{ID: "2", Name: "Tags", Order: 1},
		{ID: "2-1", Name: "Free dashboard", ParentID: "2", Order: 0},
		{ID: "2-2", Name: "General checks", ParentID: "2", Order: 1},
		{ID: "11", Name: "Test", Order: 2},
		{ID: "11-1", Name: "Dashboard", ParentID: "11", Order: 0},
		{ID: "11-2", Name: "Fact check", ParentID: "11", Order: 1},
		{ID: "11-3", Name: "Deep leaf", ParentID: "11-2", Order: 0},
	}
}

func TestProjectBrowseMode(t *testing.T) {
	tests := []struct {
		name     string
		expanded []string
		expected []string
	}{
		{
			name:     "nothing expanded shows roots",
			expanded: nil,
			expected: []string{"1", "2", "11"},
		},
		{
			name:     "one root expanded",
			expanded: []string{"2"},
			expected: []string{"1", "2", "2-1", "2-2", "11"},
		},
		{
			name:     "inner node expanded under collapsed parent stays hidden",
			expanded: []string{"11-2"},
			expected: []string{"1", "2", "11"},
		},
		{
			name:     "full chain expanded",
			expanded: []string{"11", "11-2"},
			expected: []string{"1", "2", "11", "11-1", "11-2", "11-3"},
		},
	}

	forest := Build(sampleItems())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := Project(forest, NewExpandedSet(tt.expanded...), "")
			assert.Equal(t, tt.expected, ids(visible))
		})
	}
}

func TestProjectSearchIncludesAncestors(t *testing.T) {
	forest := Build(sampleItems())

	visible := Project(forest, NewExpandedSet(), "deep")

	assert.Equal(t, []string{"11", "11-2", "11-3"}, ids(visible))
}

func TestProjectSearchIsCaseInsensitive(t *testing.T) {
	forest := Build(sampleItems())

	visible := Project(forest, nil, "DASHBOARD")

	assert.Equal(t, []string{"2", "2-1", "11", "11-1"}, ids(visible))
}

func TestProjectSearchIgnoresExpandState(t *testing.T) {
	forest := Build(sampleItems())
	expanded := NewExpandedSet("2")

	visible := Project(forest, expanded, "checks")

	assert.Equal(t, []string{"2", "2-2"}, ids(visible))
}

func TestProjectFuzzySearch(t *testing.T) {
	forest := Build(sampleItems())

	visible := Project(forest, nil, "~fchk")

	assert.Equal(t, []string{"11", "11-2"}, ids(visible))
}

func TestProjectBareFuzzyPrefixIsBrowseMode(t *testing.T) {
	forest := Build(sampleItems())

	visible := Project(forest, nil, "~")

	assert.Equal(t, []string{"1", "2", "11"}, ids(visible))
}

func TestProjectNoMatches(t *testing.T) {
	forest := Build(sampleItems())

	assert.Empty(t, Project(forest, nil, "zzz"))
}

func TestMatcherUnicodeFolding(t *testing.T) {
	m := NewMatcher("STRASSE")

	assert.True(t, m.Match("Hauptstraße"))
	assert.False(t, m.Match("Hauptweg"))
}

func TestProjectorCachesUntilInputsChange(t *testing.T) {
	var p Projector
	items := sampleItems()
	expanded := NewExpandedSet()

	first := p.Visible(items, expanded, "")
	second := p.Visible(items, expanded, "")
	assert.Same(t, &first[0], &second[0], "unchanged inputs should reuse the cached slice")

	expanded.Add("2")
	third := p.Visible(items, expanded, "")
	assert.Len(t, third, 5)

	items[0].Name = "Renamed"
	fourth := p.Visible(items, expanded, "")
	assert.Equal(t, "Renamed", fourth[0].Name)

	fifth := p.Visible(items, expanded, "renamed")
	assert.Equal(t, []string{"1"}, ids(fifth))
}

func TestExpandedSet(t *testing.T) {
	s := NewExpandedSet("b")

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, []string{"a", "b"}, s.IDs())
	assert.False(t, s.Toggle("a"))
	assert.True(t, s.Toggle("a"))
	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))

	clone := s.Clone()
	clone.Add("z")
	assert.False(t, s.Has("z"))

	var nilSet *ExpandedSet
	assert.False(t, nilSet.Has("a"))
	assert.Equal(t, 0, nilSet.Len())
}
