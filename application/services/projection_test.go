package services

import (
	"testing"

	"prioritize/domain/core/aggregates"
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainGraph(t *testing.T) *aggregates.ItemGraph {
	t.Helper()
	g := aggregates.NewItemGraph()
	require.NoError(t, g.AddItem(valueobjects.MustLabel("a"), []string{"x", "y"}))
	require.NoError(t, g.AddItem(valueobjects.MustLabel("b"), nil))
	require.NoError(t, g.AddItem(valueobjects.MustLabel("c"), nil))
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("c", "b"))
	return g
}

func TestBuildVisDataSet(t *testing.T) {
	ds := BuildVisDataSet(chainGraph(t))

	assert.Equal(t, []entities.VisNode{
		{ID: 2, Label: "a", Value: 2, Title: "x, y", Group: "group5"},
		{ID: 3, Label: "b", Value: 1, Group: "group2"},
		{ID: 4, Label: "c", Value: 0, Group: "group0"},
	}, ds.Nodes)
	assert.Equal(t, []entities.VisEdge{
		{From: 3, To: 2},
		{From: 4, To: 3},
	}, ds.Edges)
}

func TestBuildVisDataSet_Empty(t *testing.T) {
	ds := BuildVisDataSet(aggregates.NewItemGraph())

	assert.NotNil(t, ds.Nodes)
	assert.NotNil(t, ds.Edges)
	assert.Empty(t, ds.Nodes)
	assert.Empty(t, ds.Edges)
}

func TestBuildVisDataSet_TiesOrderedByLabel(t *testing.T) {
	g := aggregates.NewItemGraph()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, g.AddItem(valueobjects.MustLabel(name), nil))
	}

	ds := BuildVisDataSet(g)

	labels := make([]string, 0, len(ds.Nodes))
	for _, n := range ds.Nodes {
		labels = append(labels, n.Label)
		assert.Equal(t, "group0", n.Group)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, labels)
}

func TestBuildVisDataSet_Deterministic(t *testing.T) {
	g := chainGraph(t)
	assert.Equal(t, BuildVisDataSet(g), BuildVisDataSet(g))
}

func TestBuildVisDataSet_ValidSnapshot(t *testing.T) {
	snap, err := entities.NewSnapshot(BuildVisDataSet(chainGraph(t)))

	require.NoError(t, err)
	assert.Equal(t, 3, snap.NodeCount())
	assert.True(t, snap.HasEdge("c", "b"))
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		value, max int
		want       string
	}{
		{0, 0, "group0"},
		{0, 10, "group0"},
		{10, 10, "group5"},
		{5, 10, "group2"},
		{3, 10, "group2"},
		{7, 10, "group4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupOf(tt.value, tt.max), "value %d of %d", tt.value, tt.max)
	}
}
