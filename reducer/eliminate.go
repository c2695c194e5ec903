package reducer

import (
	"fmt"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/sparse"
)

// eliminate runs one pass over every live generator of group g, collapsing
// each row of D[g-1] that has a unit-magnitude entry. When shortOnly is
// true, rows with more than two stored entries are skipped, realizing the
// cheap first pass; the
// caller repeats with shortOnly=false once the short pass stalls.
//
// Returns whether any generator was killed during this pass.
func eliminate[T any, R coeff.Value[T]](c *Complex[T, R], g int, shortOnly bool, stats *Stats) (bool, error) {
	m, err := c.Boundary(g - 1)
	if err != nil {
		return false, err
	}

	var prevBoundary *sparse.Matrix[T, R]
	if c.HasBoundary(g - 2) {
		prevBoundary, err = c.Boundary(g - 2)
		if err != nil {
			return false, err
		}
	}
	var nextBoundary *sparse.Matrix[T, R]
	if c.HasBoundary(g) {
		nextBoundary, err = c.Boundary(g)
		if err != nil {
			return false, err
		}
	}

	progressed := false
	for gen := 1; gen <= c.Ranks[g]; gen++ {
		tombstoned, err := m.RowTombstoned(gen)
		if err != nil {
			return false, fmt.Errorf("group %d gen %d: %w", g, gen, err)
		}
		if tombstoned {
			continue
		}
		if shortOnly {
			n, err := m.RowLen(gen)
			if err != nil {
				return false, fmt.Errorf("group %d gen %d: %w", g, gen, err)
			}
			if n > 2 {
				continue
			}
		}
		pivotCol, pivotVal, err := m.FindUnitInRow(gen)
		if err != nil {
			return false, fmt.Errorf("group %d gen %d: %w", g, gen, err)
		}
		if pivotCol == 0 {
			continue
		}

		ring := c.Ring
		s := ring.Neg(pivotVal)
		sweepErr := m.ForEachInRow(gen, func(col int, val T) error {
			if col == pivotCol {
				return nil
			}
			alpha := ring.Mul(val, s)
			_, err := m.AddCols(col, pivotCol, alpha)
			return err
		})
		if sweepErr != nil {
			return false, fmt.Errorf("group %d gen %d: column sweep: %w", g, gen, sweepErr)
		}

		if n, err := m.RowLen(gen); err != nil {
			return false, fmt.Errorf("group %d gen %d: %w", g, gen, err)
		} else if n != 1 {
			return false, fmt.Errorf("group %d gen %d: %w", g, gen, ErrRowNotClean)
		}

		if err := killGen(m, prevBoundary, pivotCol, false); err != nil {
			return false, fmt.Errorf("group %d gen %d: kill pivot column %d: %w", g, gen, pivotCol, err)
		}
		c.Live[g-1]--

		if n, err := m.RowLen(gen); err != nil {
			return false, fmt.Errorf("group %d gen %d: %w", g, gen, err)
		} else if n != 0 {
			return false, fmt.Errorf("group %d gen %d: %w", g, gen, ErrRowNotClean)
		}

		if err := killGen(m, nextBoundary, gen, true); err != nil {
			return false, fmt.Errorf("group %d gen %d: kill row %d: %w", g, gen, gen, err)
		}
		c.Live[g]--

		progressed = true
		stats.record(g, shortOnly)
	}
	return progressed, nil
}

// killGen retires one generator from the complex: it erases the
// corresponding column (isRow=false) or row (isRow=true) of m, and
// tombstones the matching row/column of the adjacent boundary matrix — if
// that boundary exists — so the generator's trace disappears from both
// sides of the complex at once.
func killGen[T any, R coeff.Value[T]](m, adjacent *sparse.Matrix[T, R], idx int, isRow bool) error {
	if isRow {
		if err := m.EraseRow(idx, true); err != nil {
			return err
		}
		if adjacent != nil {
			return adjacent.EraseCol(idx, true)
		}
		return nil
	}
	if err := m.EraseCol(idx, true); err != nil {
		return err
	}
	if adjacent != nil {
		return adjacent.EraseRow(idx, true)
	}
	return nil
}
