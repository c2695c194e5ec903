package sparse

import (
	"fmt"

	"github.com/katalvlaran/homred/coeff"
)

// CheckInvariants walks the whole matrix and verifies bilateral
// consistency, strictly-increasing zero-free vectors, tombstone
// emptiness, and the overflow fence. It is not called automatically
// (that would make every operation O(nnz)); tests call it after a
// sequence of mutations to re-walk the whole matrix state.
func (m *Matrix[T, R]) CheckInvariants() error {
	if m.closed {
		return nil
	}
	for r := 1; r <= m.numRows; r++ {
		rv := m.rows[r-1]
		if rv.tombstoned {
			if rv.head != nil {
				return fmt.Errorf("row %d: %w", r, ErrRowNotEmpty)
			}
			continue
		}
		if err := checkOrdered(rv, m.ring, m.opts.maxMagnitude); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
		for e := rv.head; e != nil; e = e.next {
			if err := m.checkColRange(e.idx); err != nil {
				return fmt.Errorf("row %d entry %d: %w", r, e.idx, err)
			}
			cv := m.cols[e.idx-1]
			ce := cv.find(r)
			if ce == nil {
				return fmt.Errorf("row %d col %d: %w", r, e.idx, ErrInconsistent)
			}
			if !m.ring.Equal(ce.val, e.val) {
				return fmt.Errorf("row %d col %d: %w", r, e.idx, ErrInconsistent)
			}
		}
	}
	for c := 1; c <= m.numCols; c++ {
		cv := m.cols[c-1]
		if cv.tombstoned {
			if cv.head != nil {
				return fmt.Errorf("col %d: tombstoned but not empty", c)
			}
			continue
		}
		if err := checkOrdered(cv, m.ring, m.opts.maxMagnitude); err != nil {
			return fmt.Errorf("col %d: %w", c, err)
		}
		for e := cv.head; e != nil; e = e.next {
			if err := m.checkRowRange(e.idx); err != nil {
				return fmt.Errorf("col %d entry %d: %w", c, e.idx, err)
			}
			rv := m.rows[e.idx-1]
			re := rv.find(c)
			if re == nil {
				return fmt.Errorf("col %d row %d: %w", c, e.idx, ErrInconsistent)
			}
			if !m.ring.Equal(re.val, e.val) {
				return fmt.Errorf("col %d row %d: %w", c, e.idx, ErrInconsistent)
			}
		}
	}
	return nil
}

// checkOrdered verifies invariant 2 (strictly increasing, no zero value)
// and invariant 4 (magnitude fence) for one live vector.
func checkOrdered[T any, R coeff.Value[T]](v *vector[T], ring R, maxMagnitude int64) error {
	n := 0
	prevIdx := 0
	for e := v.head; e != nil; e = e.next {
		if e.idx <= prevIdx {
			return fmt.Errorf("indices not strictly increasing at %d", e.idx)
		}
		prevIdx = e.idx
		if ring.IsZero(e.val) {
			return fmt.Errorf("zero value stored at index %d", e.idx)
		}
		if ring.Magnitude(e.val) > maxMagnitude {
			return fmt.Errorf("index %d: %w", e.idx, ErrOverflow)
		}
		n++
	}
	if n != v.count {
		return fmt.Errorf("count %d does not match physical length %d", v.count, n)
	}
	return nil
}
