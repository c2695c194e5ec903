package fixtures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homred/bfs"
	"github.com/katalvlaran/homred/core"
	"github.com/katalvlaran/homred/dfs"
	"github.com/katalvlaran/homred/fixtures"
	"github.com/katalvlaran/homred/reducer"
)

func TestIncidenceComplexTreeCollapsesFully(t *testing.T) {
	// A tree (path graph) has no cycles: its incidence complex is exact
	// and should collapse entirely, one edge pairing off with one vertex
	// at a time.
	g := fixtures.Path(5)
	c, err := fixtures.IncidenceComplex(g)
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)

	require.Equal(t, 1, c.Live[1], "one vertex survives as the tree's connected component")
	require.Equal(t, 0, c.Live[0])
}

func TestIncidenceComplexCycleLeavesOneCycleGenerator(t *testing.T) {
	g := fixtures.Cycle(4)
	c, err := fixtures.IncidenceComplex(g)
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)

	// Betti numbers of a single cycle: b0=1 (connected), b1=1 (one loop).
	require.Equal(t, 1, c.Live[1])
	require.Equal(t, 1, c.Live[0])
}

func TestRandomSparseIsDeterministic(t *testing.T) {
	g1 := fixtures.RandomSparse(10, 0.3, 42)
	g2 := fixtures.RandomSparse(10, 0.3, 42)
	require.Equal(t, len(g1.Edges()), len(g2.Edges()))
}

// TestIncidenceComplexHomologyPreservation checks property 5: the
// surviving rank of each group after reduction equals the graph's
// cycle-space dimension and component count, computed independently via
// two unrelated connectivity oracles (bfs.Components, dfs.Components)
// that are themselves cross-checked against each other first.
func TestIncidenceComplexHomologyPreservation(t *testing.T) {
	graphs := map[string]*core.Graph{
		"K3":            fixtures.Complete(3),
		"K4":            fixtures.Complete(4),
		"K6":            fixtures.Complete(6),
		"cycle4":        fixtures.Cycle(4),
		"cycle5":        fixtures.Cycle(5),
		"path6":         fixtures.Path(6),
		"randomSparse1": fixtures.RandomSparse(9, 0.3, 11),
		"randomSparse2": fixtures.RandomSparse(14, 0.15, 99),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			bfsComponents := bfs.Components(g)
			dfsComponents := dfs.Components(g)
			require.Len(t, dfsComponents, len(bfsComponents),
				"bfs and dfs must agree on the number of connected components")

			numVertices := len(g.Vertices())
			numEdges := len(g.Edges())
			numComponents := len(bfsComponents)

			// Euler's formula: the cycle space (first Betti number) is
			// E - V + components.
			expectedBetti1 := numEdges - numVertices + numComponents
			expectedBetti0 := numComponents

			c, err := fixtures.IncidenceComplex(g)
			require.NoError(t, err)
			_, err = reducer.Reduce(context.Background(), c)
			require.NoError(t, err)

			require.Equal(t, expectedBetti1, c.Live[0], "surviving edge generators should equal the cycle-space dimension")
			require.Equal(t, expectedBetti0, c.Live[1], "surviving vertex generators should equal the component count")
		})
	}
}
