package sparse

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homred/coeff"
)

// Matrix is a sparse R×C matrix over ring R with value type T, stored as
// two parallel arrays of ordered linked-list vectors — one per row, one
// per column. Every non-zero entry appears
// in exactly two lists with identical value; maintaining that bilateral
// consistency across every mutation is the central invariant of this
// package.
//
// A Matrix is exclusively owned by its caller (typically one
// reducer.Complex) and is not safe for concurrent use — see DESIGN.md's
// concurrency decision.
type Matrix[T any, R coeff.Value[T]] struct {
	ring R

	numRows, numCols int
	rows, cols       []*vector[T]

	opts   Options
	closed bool
}

// New allocates an R×C sparse matrix, all entries implicitly zero.
// Requires numRows, numCols >= 1.
//
// Complexity: O(numRows + numCols).
func New[T any, R coeff.Value[T]](numRows, numCols int, ring R, opts ...Option) (*Matrix[T, R], error) {
	if numRows < 1 || numCols < 1 {
		return nil, ErrBadShape
	}
	m := &Matrix[T, R]{
		ring:    ring,
		numRows: numRows,
		numCols: numCols,
		rows:    make([]*vector[T], numRows),
		cols:    make([]*vector[T], numCols),
		opts:    resolveOptions(opts),
	}
	for i := range m.rows {
		m.rows[i] = &vector[T]{}
	}
	for j := range m.cols {
		m.cols[j] = &vector[T]{}
	}
	return m, nil
}

// Close releases the matrix's vectors, including any tombstoned ones.
// Idempotent: closing an already-closed matrix is a no-op, so teardown
// is safe to repeat after an early failure.
func (m *Matrix[T, R]) Close() {
	if m.closed {
		return
	}
	m.rows = nil
	m.cols = nil
	m.closed = true
}

// NumRows returns the row count fixed at construction. Complexity: O(1).
func (m *Matrix[T, R]) NumRows() int { return m.numRows }

// NumCols returns the column count fixed at construction. Complexity: O(1).
func (m *Matrix[T, R]) NumCols() int { return m.numCols }

// Ring returns the coefficient-ring witness this matrix was built with.
func (m *Matrix[T, R]) Ring() R { return m.ring }

// RowLen returns the number of stored entries in row r (1-based). Used by
// reducer's short-pass filter (rows with <= 2 entries).
func (m *Matrix[T, R]) RowLen(r int) (int, error) {
	rv, err := m.row(r)
	if err != nil {
		return 0, err
	}
	return rv.count, nil
}

// RowTombstoned reports whether row r has been eliminated.
func (m *Matrix[T, R]) RowTombstoned(r int) (bool, error) {
	if err := m.checkRowRange(r); err != nil {
		return false, err
	}
	return m.rows[r-1].tombstoned, nil
}

// ColTombstoned reports whether column c has been eliminated.
func (m *Matrix[T, R]) ColTombstoned(c int) (bool, error) {
	if err := m.checkColRange(c); err != nil {
		return false, err
	}
	return m.cols[c-1].tombstoned, nil
}

func (m *Matrix[T, R]) checkRowRange(r int) error {
	if m.closed {
		return fmt.Errorf("row %d: %w", r, ErrTombstoned)
	}
	if r < 1 || r > m.numRows {
		return fmt.Errorf("row %d: %w", r, ErrOutOfRange)
	}
	return nil
}

func (m *Matrix[T, R]) checkColRange(c int) error {
	if m.closed {
		return fmt.Errorf("col %d: %w", c, ErrTombstoned)
	}
	if c < 1 || c > m.numCols {
		return fmt.Errorf("col %d: %w", c, ErrOutOfRange)
	}
	return nil
}

// row returns the live (non-tombstoned) row vector for r, or an error.
func (m *Matrix[T, R]) row(r int) (*vector[T], error) {
	if err := m.checkRowRange(r); err != nil {
		return nil, err
	}
	rv := m.rows[r-1]
	if rv.tombstoned {
		return nil, fmt.Errorf("row %d: %w", r, ErrTombstoned)
	}
	return rv, nil
}

// col returns the live (non-tombstoned) column vector for c, or an error.
func (m *Matrix[T, R]) col(c int) (*vector[T], error) {
	if err := m.checkColRange(c); err != nil {
		return nil, err
	}
	cv := m.cols[c-1]
	if cv.tombstoned {
		return nil, fmt.Errorf("col %d: %w", c, ErrTombstoned)
	}
	return cv, nil
}

// Get returns the stored value at (r,c), or the ring's zero if absent.
// In debug mode it also cross-checks the column view and returns
// ErrInconsistent on disagreement.
//
// Complexity: O(row length), plus O(col length) with debug checks.
func (m *Matrix[T, R]) Get(r, c int) (T, error) {
	rv, err := m.row(r)
	if err != nil {
		return m.ring.Zero(), err
	}
	if err := m.checkColRange(c); err != nil {
		return m.ring.Zero(), err
	}
	e := rv.find(c)
	var val T
	found := e != nil
	if found {
		val = e.val
	} else {
		val = m.ring.Zero()
	}
	if m.opts.debugChecks {
		if err := m.crossCheck(r, c, val, found); err != nil {
			return m.ring.Zero(), err
		}
	}
	return val, nil
}

// crossCheck verifies the column view of (r,c) agrees with the row view
// already read as (val, found).
func (m *Matrix[T, R]) crossCheck(r, c int, val T, found bool) error {
	cv, err := m.col(c)
	if err != nil {
		return err
	}
	ce := cv.find(r)
	cFound := ce != nil
	if cFound != found {
		return fmt.Errorf("cell (%d,%d): %w", r, c, ErrInconsistent)
	}
	if found && !m.ring.Equal(val, ce.val) {
		return fmt.Errorf("cell (%d,%d): %w", r, c, ErrInconsistent)
	}
	return nil
}

// Put sets the value at (r,c). If v is zero, this is equivalent to
// Remove; otherwise it inserts or overwrites the entry in both the row
// and column views. Fails with ErrOverflow if Magnitude(v) exceeds the
// configured maximum.
//
// Complexity: O(row length + col length).
func (m *Matrix[T, R]) Put(r, c int, v T) error {
	rv, err := m.row(r)
	if err != nil {
		return err
	}
	cv, err := m.col(c)
	if err != nil {
		return err
	}
	if m.ring.IsZero(v) {
		rv.remove(c)
		cv.remove(r)
		return m.maybeCheckCell(r, c)
	}
	if m.ring.Magnitude(v) > m.opts.maxMagnitude {
		return fmt.Errorf("cell (%d,%d): %w", r, c, ErrOverflow)
	}
	rv.upsert(c, v)
	cv.upsert(r, v)
	return m.maybeCheckCell(r, c)
}

func (m *Matrix[T, R]) maybeCheckCell(r, c int) error {
	if !m.opts.debugChecks {
		return nil
	}
	rv, err := m.row(r)
	if err != nil {
		return err
	}
	e := rv.find(c)
	found := e != nil
	val := m.ring.Zero()
	if found {
		val = e.val
	}
	return m.crossCheck(r, c, val, found)
}

// Remove deletes the entry at (r,c) from both views and returns the
// removed value (or zero if absent). Fails if row r or column c is
// tombstoned.
//
// Complexity: O(row length + col length).
func (m *Matrix[T, R]) Remove(r, c int) (T, error) {
	rv, err := m.row(r)
	if err != nil {
		return m.ring.Zero(), err
	}
	cv, err := m.col(c)
	if err != nil {
		return m.ring.Zero(), err
	}
	val, found := rv.remove(c)
	cv.remove(r)
	if !found {
		return m.ring.Zero(), nil
	}
	return val, nil
}

// EraseRow deletes every entry of row r from the corresponding column
// lists, then empties row r, tombstoning it iff tombstone is true.
// Fails if row r is already tombstoned.
//
// Complexity: O(row length).
func (m *Matrix[T, R]) EraseRow(r int, tombstone bool) error {
	rv, err := m.row(r)
	if err != nil {
		return err
	}
	for e := rv.head; e != nil; e = e.next {
		cv := m.cols[e.idx-1]
		cv.remove(r)
	}
	rv.clear()
	if tombstone {
		rv.tombstoned = true
	}
	return nil
}

// EraseCol is the column-axis symmetric counterpart of EraseRow.
//
// Complexity: O(col length).
func (m *Matrix[T, R]) EraseCol(c int, tombstone bool) error {
	cv, err := m.col(c)
	if err != nil {
		return err
	}
	for e := cv.head; e != nil; e = e.next {
		rv := m.rows[e.idx-1]
		rv.remove(c)
	}
	cv.clear()
	if tombstone {
		cv.tombstoned = true
	}
	return nil
}

// FindUnitInRow returns the column index of the first entry in row r
// whose value is a ring unit, and its value. col == 0 means no unit
// entry was found. Fails if row r is tombstoned.
//
// Complexity: O(row length).
func (m *Matrix[T, R]) FindUnitInRow(r int) (col int, val T, err error) {
	rv, err := m.row(r)
	if err != nil {
		return 0, m.ring.Zero(), err
	}
	for e := rv.head; e != nil; e = e.next {
		if coeff.IsUnit[T, R](m.ring, e.val) {
			return e.idx, e.val, nil
		}
	}
	return 0, m.ring.Zero(), nil
}

// ForEachInRow calls fn for every stored entry of row r in ascending
// column order. Each entry's successor is read before fn runs, so fn may
// freely mutate the matrix in ways that remove or replace the entry
// currently being visited — e.g. calling AddCols on the pivot column
// during the reducer's column-sweep. Stops and returns the first error fn
// returns.
func (m *Matrix[T, R]) ForEachInRow(r int, fn func(col int, val T) error) error {
	rv, err := m.row(r)
	if err != nil {
		return err
	}
	e := rv.head
	for e != nil {
		next := e.next
		if err := fn(e.idx, e.val); err != nil {
			return err
		}
		e = next
	}
	return nil
}

// String renders the matrix densely for debugging: one bracketed row
// per line.
func (m *Matrix[T, R]) String() string {
	var b strings.Builder
	for r := 1; r <= m.numRows; r++ {
		b.WriteByte('[')
		rv := m.rows[r-1]
		if rv.tombstoned {
			b.WriteString("tombstoned")
		} else {
			e := rv.head
			for c := 1; c <= m.numCols; c++ {
				if c > 1 {
					b.WriteString(", ")
				}
				if e != nil && e.idx == c {
					fmt.Fprintf(&b, "%v", e.val)
					e = e.next
				} else {
					fmt.Fprintf(&b, "%v", m.ring.Zero())
				}
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}
