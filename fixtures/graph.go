package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/homred/core"
)

func vertexID(i int) string { return fmt.Sprintf("v%d", i) }

func newVertices(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vertexID(i))
	}
	return g
}

// Complete returns the complete graph on n vertices, K_n.
func Complete(n int) *core.Graph {
	g := newVertices(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, _ = g.AddEdge(vertexID(i), vertexID(j), 0)
		}
	}
	return g
}

// Cycle returns the n-vertex cycle graph C_n (n >= 3).
func Cycle(n int) *core.Graph {
	g := newVertices(n)
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(vertexID(i), vertexID((i+1)%n), 0)
	}
	return g
}

// Path returns the n-vertex path graph P_n.
func Path(n int) *core.Graph {
	g := newVertices(n)
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(vertexID(i), vertexID(i+1), 0)
	}
	return g
}

// RandomSparse returns a graph on n vertices where each of the n*(n-1)/2
// possible undirected edges is included independently with probability p,
// using seed for reproducibility across test runs.
func RandomSparse(n int, p float64, seed int64) *core.Graph {
	g := newVertices(n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_, _ = g.AddEdge(vertexID(i), vertexID(j), 0)
			}
		}
	}
	return g
}
