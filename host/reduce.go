package host

import (
	"context"
	"fmt"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/reducer"
	"github.com/katalvlaran/homred/sparse"
)

// Result is the 3-tuple returned to the host: reduced ranks, one dense
// column-major matrix per boundary (the zero-sized placeholder where no
// row or column survives), and elimination statistics.
type Result[T any] struct {
	Ranks    []int
	Matrices []Dense[T]
	Stats    *reducer.Stats
}

// Reduce unpacks packed integer boundary matrices, runs reducer.Reduce,
// and repacks the survivors densely — the single entry point a host
// numeric runtime calls into.
func Reduce(ctx context.Context, ranks []int, packed []PackedMatrix) (Result[int64], error) {
	ring := coeff.IntRing{}
	boundaries := make([]*sparse.Matrix[int64, coeff.IntRing], len(packed))
	for k, pm := range packed {
		m, err := UnpackInt(pm, ranks[k+1], ranks[k])
		if err != nil {
			return Result[int64]{}, fmt.Errorf("unpack boundary %d: %w", k, err)
		}
		boundaries[k] = m
	}

	c, err := reducer.NewComplex(ranks, boundaries, ring)
	if err != nil {
		return Result[int64]{}, err
	}
	stats, err := reducer.Reduce(ctx, c)
	if err != nil {
		return Result[int64]{}, err
	}

	matrices := make([]Dense[int64], len(boundaries))
	for k, m := range boundaries {
		d, err := compact(m)
		if err != nil {
			return Result[int64]{}, fmt.Errorf("repack boundary %d: %w", k, err)
		}
		matrices[k] = d
	}
	return Result[int64]{Ranks: c.Live, Matrices: matrices, Stats: stats}, nil
}

// ReduceGroup is Reduce's counterpart for the group ring Z[t]/(t^2-1).
func ReduceGroup(ctx context.Context, ranks []int, packed []PackedGroupMatrix) (Result[coeff.GroupElem], error) {
	ring := coeff.GroupRing{}
	boundaries := make([]*sparse.Matrix[coeff.GroupElem, coeff.GroupRing], len(packed))
	for k, pm := range packed {
		m, err := UnpackGroup(pm, ranks[k+1], ranks[k])
		if err != nil {
			return Result[coeff.GroupElem]{}, fmt.Errorf("unpack boundary %d: %w", k, err)
		}
		boundaries[k] = m
	}

	c, err := reducer.NewComplex(ranks, boundaries, ring)
	if err != nil {
		return Result[coeff.GroupElem]{}, err
	}
	stats, err := reducer.Reduce(ctx, c)
	if err != nil {
		return Result[coeff.GroupElem]{}, err
	}

	matrices := make([]Dense[coeff.GroupElem], len(boundaries))
	for k, m := range boundaries {
		d, err := compact(m)
		if err != nil {
			return Result[coeff.GroupElem]{}, fmt.Errorf("repack boundary %d: %w", k, err)
		}
		matrices[k] = d
	}
	return Result[coeff.GroupElem]{Ranks: c.Live, Matrices: matrices, Stats: stats}, nil
}

// compact drops tombstoned rows/columns of m and returns the remaining
// cells as a dense, zero-based, column-major matrix. A matrix with no
// live rows or columns collapses to the zero-sized placeholder.
func compact[T any, R coeff.Value[T]](m *sparse.Matrix[T, R]) (Dense[T], error) {
	liveRows := make([]int, 0, m.NumRows())
	for r := 1; r <= m.NumRows(); r++ {
		tomb, err := m.RowTombstoned(r)
		if err != nil {
			return Dense[T]{}, err
		}
		if !tomb {
			liveRows = append(liveRows, r)
		}
	}
	liveCols := make([]int, 0, m.NumCols())
	colIndex := make(map[int]int, m.NumCols())
	for c := 1; c <= m.NumCols(); c++ {
		tomb, err := m.ColTombstoned(c)
		if err != nil {
			return Dense[T]{}, err
		}
		if !tomb {
			colIndex[c] = len(liveCols)
			liveCols = append(liveCols, c)
		}
	}
	if len(liveRows) == 0 || len(liveCols) == 0 {
		return Dense[T]{}, nil
	}

	out := NewDense[T](len(liveRows), len(liveCols))
	for newR, r := range liveRows {
		if err := m.ForEachInRow(r, func(c int, v T) error {
			newC, ok := colIndex[c]
			if !ok {
				return nil
			}
			return out.Set(newR, newC, v)
		}); err != nil {
			return Dense[T]{}, err
		}
	}
	return out, nil
}
