package fixtures

import (
	"sort"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/core"
	"github.com/katalvlaran/homred/reducer"
	"github.com/katalvlaran/homred/sparse"
)

// IncidenceComplex turns a graph into a two-group integer chain complex:
// group 0 has one generator per edge, group 1 one generator per vertex,
// and D[0] is the signed vertex-by-edge incidence matrix (row = vertex,
// column = edge; entry +1 at the edge's head, -1 at its tail). Every
// stored entry has magnitude 1, so a sufficiently connected graph reduces
// to a complex whose ranks reflect the graph's cycle space and component
// count — a homology-preservation property checked in fixtures' own tests
// against a bfs/dfs oracle.
func IncidenceComplex(g *core.Graph) (*reducer.Complex[int64, coeff.IntRing], error) {
	vertices := g.Vertices()
	sort.Strings(vertices)
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i + 1
	}
	edges := g.Edges()

	ring := coeff.IntRing{}
	d0, err := sparse.New[int64](len(vertices), len(edges), ring)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		col := i + 1
		head, tail := index[e.To], index[e.From]
		if head == tail {
			continue
		}
		if err := d0.Put(head, col, 1); err != nil {
			return nil, err
		}
		if err := d0.Put(tail, col, -1); err != nil {
			return nil, err
		}
	}

	ranks := []int{len(edges), len(vertices)}
	return reducer.NewComplex(ranks, []*sparse.Matrix[int64, coeff.IntRing]{d0}, ring)
}

// IncidenceComplexReversed builds the same complex as IncidenceComplex
// but indexes vertices and edges in the opposite order. The two
// complexes are isomorphic, so a reducer run over either must leave the
// same per-group generator count — this is what the pivot-order
// independence property test checks.
func IncidenceComplexReversed(g *core.Graph) (*reducer.Complex[int64, coeff.IntRing], error) {
	vertices := g.Vertices()
	sort.Sort(sort.Reverse(sort.StringSlice(vertices)))
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i + 1
	}
	edges := g.Edges()
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	ring := coeff.IntRing{}
	d0, err := sparse.New[int64](len(vertices), len(edges), ring)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		col := i + 1
		head, tail := index[e.To], index[e.From]
		if head == tail {
			continue
		}
		if err := d0.Put(head, col, 1); err != nil {
			return nil, err
		}
		if err := d0.Put(tail, col, -1); err != nil {
			return nil, err
		}
	}

	ranks := []int{len(edges), len(vertices)}
	return reducer.NewComplex(ranks, []*sparse.Matrix[int64, coeff.IntRing]{d0}, ring)
}
