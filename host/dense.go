package host

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homred/coeff"
)

// Dense is a flat-slice, column-major dense matrix, matching the
// reducer's output contract of returning reduced matrices to the host
// in column-major order. DenseInt and DenseGroup instantiate it for
// the two coefficient rings.
type Dense[T any] struct {
	rows, cols int
	data       []T
}

// DenseInt is Dense specialized to the integer ring's value type.
type DenseInt = Dense[int64]

// DenseGroup is Dense specialized to the group ring's value type.
type DenseGroup = Dense[coeff.GroupElem]

// ZeroPlaceholder is the 0x0 dense matrix returned in place of an actual
// 0xk or kx0 result.
var ZeroPlaceholder = DenseInt{}

// NewDense allocates a rows x cols dense matrix with every cell holding
// zero's Go zero value.
func NewDense[T any](rows, cols int) Dense[T] {
	return Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

func (d Dense[T]) indexOf(r, c int) (int, error) {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		return 0, fmt.Errorf("cell (%d,%d): %w", r, c, ErrBadPackedEntry)
	}
	return c*d.rows + r, nil
}

// Rows returns the row count.
func (d Dense[T]) Rows() int { return d.rows }

// Cols returns the column count.
func (d Dense[T]) Cols() int { return d.cols }

// At returns the value at (r,c), zero-based.
func (d Dense[T]) At(r, c int) (T, error) {
	var zero T
	i, err := d.indexOf(r, c)
	if err != nil {
		return zero, err
	}
	return d.data[i], nil
}

// Set stores v at (r,c), zero-based.
func (d Dense[T]) Set(r, c int, v T) error {
	i, err := d.indexOf(r, c)
	if err != nil {
		return err
	}
	d.data[i] = v
	return nil
}

// Clone returns an independent copy of d.
func (d Dense[T]) Clone() Dense[T] {
	out := Dense[T]{rows: d.rows, cols: d.cols, data: make([]T, len(d.data))}
	copy(out.data, d.data)
	return out
}

// String renders d row by row for debugging.
func (d Dense[T]) String() string {
	var b strings.Builder
	for r := 0; r < d.rows; r++ {
		b.WriteByte('[')
		for c := 0; c < d.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", d.data[c*d.rows+r])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
