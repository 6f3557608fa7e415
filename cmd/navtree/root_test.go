package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/storage"
)

func writeItems(t *testing.T, items []model.Item) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sidebar.json")
	data, err := storage.EncodeDocument(&model.Document{Items: items})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "a", Name: "Alpha", Order: 0},
		{ID: "b", Name: "Board", Order: 1},
		{ID: "b1", Name: "Board child", ParentID: "b", Order: 0},
		{ID: "c", Name: "Charts", Order: 2},
	}
}

func TestLint(t *testing.T) {
	out, err := run(t, "lint", writeItems(t, sampleItems()))
	require.NoError(t, err)
	assert.Contains(t, out, "4 items, no problems")

	bad := append(sampleItems(), model.Item{ID: "d", Name: "Lost", ParentID: "zz", Order: 0})
	out, err = run(t, "lint", writeItems(t, bad))
	assert.Error(t, err)
	assert.Contains(t, out, "dangling-parent: d")
}

func TestPrint(t *testing.T) {
	path := writeItems(t, sampleItems())

	out, err := run(t, "print", path)
	require.NoError(t, err)
	assert.Equal(t, "  Alpha  [a]\n▸ Board  [b]\n  Charts  [c]\n", out)

	out, err = run(t, "print", "--all", path)
	require.NoError(t, err)
	assert.Contains(t, out, "▾ Board  [b]\n    Board child  [b1]\n")

	out, err = run(t, "print", "-q", "child", path)
	require.NoError(t, err)
	assert.Equal(t, "▾ Board  [b]\n    Board child  [b1]\n", out)
}

func TestMoveWrites(t *testing.T) {
	path := writeItems(t, sampleItems())

	_, err := run(t, "move", "--write", path, "c", "b", "inside")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := storage.DecodeDocument(data)
	require.NoError(t, err)
	c, ok := model.FindItem(doc.Items, "c")
	require.True(t, ok)
	assert.Equal(t, "b", c.ParentID)
	assert.Equal(t, 1, c.Order)

	_, err = run(t, "move", path, "b", "b1", "inside")
	assert.Error(t, err, "an item cannot move into its own subtree")
	_, err = run(t, "move", path, "a", "b", "sideways")
	assert.Error(t, err)
}

func TestNormalizePrints(t *testing.T) {
	items := sampleItems()
	items[3].Order = 9
	out, err := run(t, "normalize", writeItems(t, items))
	require.NoError(t, err)

	doc, err := storage.DecodeDocument([]byte(out))
	require.NoError(t, err)
	c, ok := model.FindItem(doc.Items, "c")
	require.True(t, ok)
	assert.Equal(t, 2, c.Order)
}
