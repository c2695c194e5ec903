// Package dfs provides depth-first connectivity over a core.Graph: a
// second, independently-implemented traversal oracle the fixtures
// property tests cross-check against bfs's component count.
package dfs

import (
	"sort"

	"github.com/katalvlaran/homred/core"
)

// vertexState is the three-color marker classic DFS uses while walking
// a graph.
type vertexState int

const (
	white vertexState = iota // unvisited
	gray                     // on the current recursion stack
	black                    // fully explored
)

// Components returns the graph's connected components, each a sorted
// slice of vertex IDs, via a recursive depth-first walk. Component
// order follows g.Vertices() ascending, matching bfs.Components.
func Components(g *core.Graph) [][]string {
	state := make(map[string]vertexState)
	var components [][]string

	for _, start := range g.Vertices() {
		if state[start] != white {
			continue
		}
		var component []string
		visit(g, start, state, &component)
		sort.Strings(component)
		components = append(components, component)
	}

	return components
}

// visit performs one recursive DFS descent from id, appending every
// newly-discovered vertex to component in visitation order.
func visit(g *core.Graph, id string, state map[string]vertexState, component *[]string) {
	state[id] = gray
	*component = append(*component, id)

	neighbors, err := g.NeighborIDs(id)
	if err == nil {
		for _, nbr := range neighbors {
			if state[nbr] == white {
				visit(g, nbr, state, component)
			}
		}
	}

	state[id] = black
}
