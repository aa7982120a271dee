package aggregates

import (
	"testing"

	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphWith(t *testing.T, names ...string) *ItemGraph {
	t.Helper()
	g := NewItemGraph()
	for _, name := range names {
		require.NoError(t, g.AddItem(valueobjects.MustLabel(name), nil))
	}
	return g
}

func TestItemGraph_AddItem_Conflict(t *testing.T) {
	g := graphWith(t, "a")

	err := g.AddItem(valueobjects.MustLabel("a"), nil)

	assert.True(t, pkgerrors.IsConflict(err))
	assert.Equal(t, 1, g.Len())
}

func TestItemGraph_AddEdge(t *testing.T) {
	g := graphWith(t, "a", "b")

	require.NoError(t, g.AddEdge("a", "b"))

	assert.True(t, pkgerrors.IsConflict(g.AddEdge("a", "b")))
	assert.True(t, pkgerrors.IsValidation(g.AddEdge("a", "a")))
	assert.True(t, pkgerrors.IsValidation(g.AddEdge("a", "missing")))
	assert.True(t, pkgerrors.IsValidation(g.AddEdge("missing", "a")))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestItemGraph_RemoveEdge(t *testing.T) {
	g := graphWith(t, "a", "b")
	require.NoError(t, g.AddEdge("a", "b"))

	require.NoError(t, g.RemoveEdge("a", "b"))

	assert.Zero(t, g.EdgeCount())
	assert.True(t, pkgerrors.IsNotFound(g.RemoveEdge("a", "b")))
	assert.True(t, pkgerrors.IsNotFound(g.RemoveEdge("missing", "b")))
}

func TestItemGraph_RenameItem_RewritesEdges(t *testing.T) {
	// Arrange
	g := graphWith(t, "a", "b", "c")
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("a", "c"))

	// Act
	err := g.RenameItem("a", valueobjects.MustLabel("z"))

	// Assert
	require.NoError(t, err)
	_, ok := g.Item("a")
	assert.False(t, ok)

	z, ok := g.Item("z")
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, z.DependsOn())

	b, _ := g.Item("b")
	assert.Equal(t, []string{"z"}, b.DependsOn())
}

func TestItemGraph_RenameItem_Errors(t *testing.T) {
	g := graphWith(t, "a", "b")

	assert.True(t, pkgerrors.IsNotFound(g.RenameItem("missing", valueobjects.MustLabel("x"))))
	assert.True(t, pkgerrors.IsConflict(g.RenameItem("a", valueobjects.MustLabel("b"))))
	assert.True(t, pkgerrors.IsValidation(g.RenameItem("a", valueobjects.MustLabel("a"))))
}

func TestItemGraph_RemoveItem_DropsIncidentEdges(t *testing.T) {
	g := graphWith(t, "a", "b", "c")
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))

	require.NoError(t, g.RemoveItem("b"))

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.EdgeCount())
	a, _ := g.Item("a")
	assert.Equal(t, []string{"c"}, a.DependsOn())
	assert.True(t, pkgerrors.IsNotFound(g.RemoveItem("b")))
}

func TestItemGraph_DependantCounts(t *testing.T) {
	// a -> b -> c, d -> c
	g := graphWith(t, "a", "b", "c", "d")
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("d", "c"))

	counts := g.DependantCounts()

	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 3, "d": 0}, counts)
}

func TestItemGraph_DependantCounts_Cycle(t *testing.T) {
	g := graphWith(t, "a", "b")
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	counts := g.DependantCounts()

	assert.Equal(t, map[string]int{"a": 1, "b": 1}, counts)
}

func TestItemGraph_Clone_IsIndependent(t *testing.T) {
	g := graphWith(t, "a", "b")
	clone := g.Clone()

	require.NoError(t, clone.AddEdge("a", "b"))

	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 1, clone.EdgeCount())
}
