// Package core provides a small, thread-safe in-memory undirected Graph:
// the vertex/edge substrate fixtures builds chain complexes on top of.
//
// Core methods:
//
//	AddVertex(id string) error                             O(1)
//	HasVertex(id string) bool                               O(1)
//	Vertices() []string                                      O(V log V), sorted
//	AddEdge(from, to string, weight int64) (string, error)  O(1) amortized
//	Edges() []*Edge                                          O(E log E), sorted by ID
//	NeighborIDs(id string) ([]string, error)                 O(d log d), unique, sorted
//	Weighted() bool                                          O(1)
//
// Edge IDs are generated atomically ("e1", "e2", ...); adjacency is
// tracked both ways in adjacencyList[from][to][edgeID], since the graph
// is always undirected.
package core
