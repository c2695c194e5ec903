package reducer

import (
	"fmt"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/sparse"
)

// MaterializeFunc lazily builds the boundary matrix D[g] (rows =
// Ranks[g+1], cols = Ranks[g]) the first time a Complex needs it.
// An implementation turns its source data into a sparse.Matrix. No
// package in this module supplies one: host.Reduce and host.ReduceGroup
// unpack every packed boundary before reducing and pass the results to
// NewComplex, as fixtures and tests that already hold sparse matrices do.
type MaterializeFunc[T any, R coeff.Value[T]] func(g int) (*sparse.Matrix[T, R], error)

// Complex is a chain complex of N free groups joined by N-1 boundary
// matrices. Group g has original rank
// Ranks[g] and current generator count Live[g] <= Ranks[g]; the
// boundary D[g] sits between group g and group g+1.
//
// A Complex exclusively owns its boundary matrices and is not safe for
// concurrent use; see DESIGN.md for the rationale.
type Complex[T any, R coeff.Value[T]] struct {
	Ring R

	Ranks []int
	Live  []int

	FirstGroup, LastGroup int

	boundaries  []*sparse.Matrix[T, R]
	materialize MaterializeFunc[T, R]
}

// NewComplex builds a Complex from ranks and already-materialized
// boundary matrices (len(boundaries) == len(ranks)-1, or 0 if ranks has
// fewer than 2 non-empty groups). FirstGroup/LastGroup are computed as
// the min/max index with Ranks[g] > 0; if no group
// has positive rank the complex is empty (FirstGroup > LastGroup).
func NewComplex[T any, R coeff.Value[T]](ranks []int, boundaries []*sparse.Matrix[T, R], ring R) (*Complex[T, R], error) {
	return newComplex(ranks, boundaries, nil, ring)
}

// NewLazyComplex builds a Complex whose boundary matrices are built on
// first access via materialize.
func NewLazyComplex[T any, R coeff.Value[T]](ranks []int, materialize MaterializeFunc[T, R], ring R) (*Complex[T, R], error) {
	return newComplex(ranks, nil, materialize, ring)
}

func newComplex[T any, R coeff.Value[T]](ranks []int, boundaries []*sparse.Matrix[T, R], materialize MaterializeFunc[T, R], ring R) (*Complex[T, R], error) {
	live := make([]int, len(ranks))
	first, last := -1, -1
	for g, r := range ranks {
		if r < 0 {
			return nil, fmt.Errorf("group %d: %w", g, ErrBadRanks)
		}
		live[g] = r
		if r > 0 {
			if first == -1 {
				first = g
			}
			last = g
		}
	}
	bounds := boundaries
	if bounds == nil && len(ranks) > 0 {
		bounds = make([]*sparse.Matrix[T, R], len(ranks)-1)
	}
	if boundaries != nil {
		copy(bounds, boundaries)
	}
	return &Complex[T, R]{
		Ring:        ring,
		Ranks:       ranks,
		Live:        live,
		FirstGroup:  first,
		LastGroup:   last,
		boundaries:  bounds,
		materialize: materialize,
	}, nil
}

// Empty reports whether every group has rank 0.
func (c *Complex[T, R]) Empty() bool {
	return c.FirstGroup == -1
}

// Boundary returns D[g], materializing it on first access if the
// complex was built with NewLazyComplex.
func (c *Complex[T, R]) Boundary(g int) (*sparse.Matrix[T, R], error) {
	if g < 0 || g >= len(c.boundaries) {
		return nil, fmt.Errorf("boundary %d: %w", g, sparse.ErrOutOfRange)
	}
	if c.boundaries[g] != nil {
		return c.boundaries[g], nil
	}
	if c.materialize == nil {
		return nil, fmt.Errorf("boundary %d: %w", g, ErrMaterializeNil)
	}
	m, err := c.materialize(g)
	if err != nil {
		return nil, fmt.Errorf("materialize boundary %d: %w", g, err)
	}
	c.boundaries[g] = m
	return m, nil
}

// HasBoundary reports whether D[g] exists as a slot in the complex
// (0 <= g < len(Ranks)-1) without forcing materialization.
func (c *Complex[T, R]) HasBoundary(g int) bool {
	return g >= 0 && g < len(c.boundaries)
}

// Close releases every materialized boundary matrix.
func (c *Complex[T, R]) Close() {
	for _, m := range c.boundaries {
		if m != nil {
			m.Close()
		}
	}
}
