// Package homred reduces chain complexes of free abelian (or Z[t]/(t²−1))
// groups by elementary simplicial collapse, producing a smaller
// chain-homotopy-equivalent complex with the same homology.
//
// What is homred?
//
//	A small, dependency-light reduction engine built around three layers:
//
//	  • coeff/    — the coefficient ring contract (V), plus the integer and
//	                Z[t]/(t²−1) group-ring instantiations
//	  • sparse/   — a bilaterally-consistent sparse matrix: every non-zero
//	                entry lives in both a row list and a column list
//	  • reducer/  — the elimination engine: finds unit pivots, performs
//	                column-sweep eliminations, and cascades tombstoning
//	                across adjacent chain groups
//
// Two supporting packages round out the module:
//
//	host/      — packs/unpacks the wire format a host numeric runtime
//	             exchanges with the reducer, and renders dense results
//	fixtures/  — builds small test chain complexes out of graphs (a
//	             graph's signed incidence matrix is a boundary map with
//	             every entry a ring unit), reusing core.Graph/bfs/dfs
//
// Quick mental model:
//
//	D[g-1]          D[g]
//	C[g-1]  <----  C[g]  <----  C[g+1]
//
//	A generator of C[g] whose boundary contains a unit-coefficient
//	generator of C[g-1] collapses both away; the boundaries of every
//	remaining generator are adjusted in place by column operations.
//
// See DESIGN.md at the repository root for the full component design
// and rationale.
package homred
