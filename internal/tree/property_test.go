package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pstuifzand/tui-sidebar/internal/model"
)

var names = []string{"alpha", "Beta", "gamma", "Delta", "board", "Dashboard", "checks", "ALPHABET"}

// genItems draws an acyclic item list: parents always point at an earlier
// item. Order values may repeat or leave gaps.
func genItems(t *rapid.T) []model.Item {
	n := rapid.IntRange(0, 14).Draw(t, "n")
	items := make([]model.Item, 0, n)
	for i := 0; i < n; i++ {
		item := model.Item{
			ID:    fmt.Sprintf("n%d", i),
			Name:  rapid.SampledFrom(names).Draw(t, "name"),
			Order: rapid.IntRange(0, 6).Draw(t, "order"),
		}
		if i > 0 && rapid.Bool().Draw(t, "hasParent") {
			item.ParentID = fmt.Sprintf("n%d", rapid.IntRange(0, i-1).Draw(t, "parent"))
		}
		items = append(items, item)
	}
	return rapid.Permutation(items).Draw(t, "shuffled")
}

func genPosition(t *rapid.T) model.DropPosition {
	return rapid.SampledFrom([]model.DropPosition{
		model.DropBefore, model.DropAfter, model.DropInside,
	}).Draw(t, "pos")
}

func pickID(t *rapid.T, items []model.Item, label string) string {
	if len(items) == 0 {
		return "missing"
	}
	return rapid.SampledFrom(items).Draw(t, label).ID
}

func TestPropertyBuildFlattenRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)

		back := Items(Flatten(Build(items)))

		require.ElementsMatch(t, items, back)
	})
}

func TestPropertyProjectionIsPreOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		expanded := NewExpandedSet()
		for _, item := range items {
			if rapid.Bool().Draw(t, "expand") {
				expanded.Add(item.ID)
			}
		}
		forest := Build(items)
		idx := NewIndex(items)

		pos := make(map[string]int)
		for i, n := range Project(forest, expanded, "") {
			pos[n.ID] = i
			if p := idx.ParentOf(n.ID); p != "" {
				parentPos, ok := pos[p]
				require.True(t, ok, "parent %s of %s must precede it", p, n.ID)
				require.Less(t, parentPos, i)
			}
		}
	})
}

func TestPropertyReorderKeepsTouchedGroupsContiguous(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		source := pickID(t, items, "source")
		target := pickID(t, items, "target")
		pos := genPosition(t)

		got, changed := Move(items, source, target, pos)
		require.Len(t, got, len(items))
		if !changed {
			require.Equal(t, items, got)
			return
		}

		before, _ := model.FindItem(items, source)
		after, _ := model.FindItem(got, source)
		assertContiguous(t, got, after.ParentID)
		assertContiguous(t, got, before.ParentID)

		for _, p := range Validate(got) {
			require.NotEqual(t, ProblemCycle, p.Kind, p.String())
		}
	})
}

func TestPropertyReorderNoOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		id := pickID(t, items, "id")
		pos := genPosition(t)

		require.Equal(t, items, Reorder(items, id, id, pos))
		require.Equal(t, items, Reorder(items, id, "does-not-exist", pos))
	})
}

func TestPropertyVisibilityMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		if len(items) == 0 {
			return
		}
		forest := Build(items)
		expanded := NewExpandedSet()
		for _, item := range items {
			if rapid.Bool().Draw(t, "expand") {
				expanded.Add(item.ID)
			}
		}
		id := pickID(t, items, "toggle")

		base := len(Project(forest, expanded, ""))
		grown := expanded.Clone()
		grown.Add(id)
		shrunk := expanded.Clone()
		shrunk.Remove(id)

		require.GreaterOrEqual(t, len(Project(forest, grown, "")), base)
		require.LessOrEqual(t, len(Project(forest, shrunk, "")), base)
	})
}

func TestPropertySearchCompleteness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := genItems(t)
		query := rapid.SampledFrom([]string{"a", "B", "dash", "ALPHA", "ck", "zz"}).Draw(t, "query")
		idx := NewIndex(items)
		m := NewMatcher(query)

		visible := make(map[string]bool)
		for _, n := range Project(Build(items), nil, query) {
			visible[n.ID] = true
		}

		for _, item := range items {
			if !m.Match(item.Name) {
				continue
			}
			require.True(t, visible[item.ID], "match %s missing", item.ID)
			for _, anc := range idx.Ancestors(item.ID) {
				require.True(t, visible[anc], "ancestor %s of %s missing", anc, item.ID)
			}
		}
	})
}
