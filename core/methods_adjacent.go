// File: methods_adjacent.go
// Role: neighborhood queries and the adjacency-index helper shared by
// AddVertex and AddEdge.
//
// Determinism: NeighborIDs returns unique IDs sorted lexicographically.
// Concurrency: reads hold muEdgeAdj; ensureAdjacency is only ever called
// by code already holding muEdgeAdj's write lock.
package core

import "sort"

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees the nested maps for (from,to) exist. Must
// be called under muEdgeAdj's write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
