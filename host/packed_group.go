package host

import (
	"fmt"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/sparse"
)

// PackedGroupMatrix is the group-ring variant of PackedMatrix: the same
// value*(row*2^32+column) packing, but the low bit of the row component
// selects which coefficient of a+b*t the entry's +-1 contributes to (0
// selects a, 1 selects t's coefficient b).
type PackedGroupMatrix struct {
	Rows, Cols int
	Entries    []int64
}

// UnpackGroup decodes a PackedGroupMatrix into a sparse matrix over the
// group ring Z[t]/(t^2-1). A cell may receive contributions from two
// packed entries, one per coefficient, which are summed.
func UnpackGroup(pm PackedGroupMatrix, rows, cols int) (*sparse.Matrix[coeff.GroupElem, coeff.GroupRing], error) {
	ring := coeff.GroupRing{}
	m, err := sparse.New[coeff.GroupElem](rows, cols, ring)
	if err != nil {
		return nil, err
	}
	for _, w := range pm.Entries {
		value, mag := int64(1), w
		if w < 0 {
			value, mag = -1, -w
		}
		packedRow := mag >> colBits
		col := int(mag & colMask)
		component := packedRow & 1
		row := int(packedRow >> 1)
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return nil, fmt.Errorf("entry (%d,%d): %w", row, col, ErrBadPackedEntry)
		}
		var contribution coeff.GroupElem
		if component == 0 {
			contribution.A = value
		} else {
			contribution.B = value
		}
		cur, err := m.Get(row+1, col+1)
		if err != nil {
			return nil, err
		}
		if err := m.Put(row+1, col+1, ring.Add(cur, contribution)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// PackGroup is UnpackGroup's inverse, emitting up to two packed entries
// per live cell (one for a nonzero A coefficient, one for a nonzero B).
func PackGroup(m *sparse.Matrix[coeff.GroupElem, coeff.GroupRing]) (PackedGroupMatrix, error) {
	pm := PackedGroupMatrix{Rows: m.NumRows(), Cols: m.NumCols()}
	for r := 1; r <= m.NumRows(); r++ {
		tomb, err := m.RowTombstoned(r)
		if err != nil {
			return PackedGroupMatrix{}, err
		}
		if tomb {
			continue
		}
		if err := m.ForEachInRow(r, func(c int, v coeff.GroupElem) error {
			base := int64(r-1)<<1 | 0
			if v.A != 0 {
				word := base<<colBits | int64(c-1)
				if v.A < 0 {
					word = -word
				}
				pm.Entries = append(pm.Entries, word)
			}
			if v.B != 0 {
				word := (base|1)<<colBits | int64(c-1)
				if v.B < 0 {
					word = -word
				}
				pm.Entries = append(pm.Entries, word)
			}
			return nil
		}); err != nil {
			return PackedGroupMatrix{}, err
		}
	}
	return pm, nil
}
