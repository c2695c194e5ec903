package host

import (
	"fmt"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/sparse"
)

const (
	colBits = 32
	colMask = (1 << colBits) - 1
)

// PackedMatrix is the 64-bit integer wire format: one int64 per non-zero
// entry, encoding value*(row*2^32+column) with value in {+1,-1} and row,
// column zero-based.
type PackedMatrix struct {
	Rows, Cols int
	Entries    []int64
}

// PackedMatrixWide would be a 32-bit two-word-per-entry layout. Declared
// but unimplemented: see DESIGN.md's Open Questions for why no current
// caller needs it.
type PackedMatrixWide struct {
	Rows, Cols int
	Words      []int32
}

// UnpackIntWide would decode a PackedMatrixWide the way UnpackInt decodes
// a PackedMatrix. No caller needs the 32-bit layout yet, so it only
// reports the gap.
func UnpackIntWide(pm PackedMatrixWide, rows, cols int) (*sparse.Matrix[int64, coeff.IntRing], error) {
	return nil, ErrNotImplemented
}

// PackIntWide would be UnpackIntWide's inverse, the way PackInt is
// UnpackInt's. No caller needs the 32-bit layout yet, so it only reports
// the gap.
func PackIntWide(m *sparse.Matrix[int64, coeff.IntRing]) (PackedMatrixWide, error) {
	return PackedMatrixWide{}, ErrNotImplemented
}

// UnpackInt decodes a PackedMatrix into a sparse matrix over the integer
// ring.
func UnpackInt(pm PackedMatrix, rows, cols int) (*sparse.Matrix[int64, coeff.IntRing], error) {
	m, err := sparse.New[int64](rows, cols, coeff.IntRing{})
	if err != nil {
		return nil, err
	}
	for _, w := range pm.Entries {
		value, mag := int64(1), w
		if w < 0 {
			value, mag = -1, -w
		}
		row := int(mag >> colBits)
		col := int(mag & colMask)
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return nil, fmt.Errorf("entry (%d,%d): %w", row, col, ErrBadPackedEntry)
		}
		if err := m.Put(row+1, col+1, value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// PackInt is UnpackInt's inverse: it flattens every live entry of m into
// the 64-bit packed format, in row-major traversal order.
func PackInt(m *sparse.Matrix[int64, coeff.IntRing]) (PackedMatrix, error) {
	pm := PackedMatrix{Rows: m.NumRows(), Cols: m.NumCols()}
	for r := 1; r <= m.NumRows(); r++ {
		tomb, err := m.RowTombstoned(r)
		if err != nil {
			return PackedMatrix{}, err
		}
		if tomb {
			continue
		}
		if err := m.ForEachInRow(r, func(c int, v int64) error {
			word := int64(r-1)<<colBits | int64(c-1)
			if v < 0 {
				word = -word
			}
			pm.Entries = append(pm.Entries, word)
			return nil
		}); err != nil {
			return PackedMatrix{}, err
		}
	}
	return pm, nil
}
