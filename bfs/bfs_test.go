package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homred/bfs"
	"github.com/katalvlaran/homred/core"
)

func buildGraph(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

func TestComponentsSingleConnectedGraph(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	components := bfs.Components(g)
	require.Len(t, components, 1)
	require.ElementsMatch(t, []string{"a", "b", "c"}, components[0])
}

func TestComponentsDisconnectedGraph(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}, {"c", "d"}})
	components := bfs.Components(g)
	require.Len(t, components, 2)

	var sizes []int
	for _, c := range components {
		sizes = append(sizes, len(c))
	}
	require.ElementsMatch(t, []int{2, 2}, sizes)
}

func TestComponentsIsolatedVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("lonely"))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	components := bfs.Components(g)
	require.Len(t, components, 2)
}

func TestComponentsEmptyGraph(t *testing.T) {
	g := core.NewGraph()
	require.Empty(t, bfs.Components(g))
}
