// Package bfs provides breadth-first connectivity over a core.Graph: a
// traversal-based oracle the fixtures property tests cross-check
// against dfs's independent implementation and against the reducer's
// surviving rank.
package bfs

import (
	"sort"

	"github.com/katalvlaran/homred/core"
)

// Components returns the graph's connected components, each a sorted
// slice of vertex IDs. Component order is the order in which each
// component's first vertex is discovered while scanning g.Vertices()
// ascending, so the result is deterministic for a fixed graph.
func Components(g *core.Graph) [][]string {
	visited := make(map[string]bool)
	var components [][]string

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		component := []string{start}
		visited[start] = true
		queue := []string{start}

		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]

			neighbors, err := g.NeighborIDs(id)
			if err != nil {
				continue
			}
			for _, nbr := range neighbors {
				if !visited[nbr] {
					visited[nbr] = true
					component = append(component, nbr)
					queue = append(queue, nbr)
				}
			}
		}
		sort.Strings(component)
		components = append(components, component)
	}

	return components
}
