// Package sparse implements a bilaterally-consistent sparse matrix: every
// non-zero entry is stored twice, once in its row's linked list and once
// in its column's, and every mutation keeps the two views in agreement.
//
// What & Why:
//
//	The reducer never touches a row or column's backing storage directly;
//	it only ever calls Matrix methods, which are the sole code path
//	allowed to mutate an entry list. This file declares the sentinel
//	error set every fallible method returns, following a "pkg: message"
//	+ errors.Is convention.
package sparse

import "errors"

var (
	// ErrOutOfRange indicates a row or column index fell outside
	// [1, NumRows] / [1, NumCols]. Public indexers must return this,
	// never panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrTombstoned indicates an operation targeted a row or column that
	// was already tombstoned (eliminated). Reading or mutating a
	// tombstoned vector is always a fatal error, never a silent no-op.
	ErrTombstoned = errors.New("sparse: vector is tombstoned")

	// ErrOverflow indicates an intermediate or stored entry's magnitude
	// exceeded the configured maximum.
	ErrOverflow = errors.New("sparse: entry magnitude overflow")

	// ErrInconsistent indicates the row view and column view of a cell
	// disagree; only raised when debug checks are enabled. This is an
	// invariant violation, never triggered by valid input.
	ErrInconsistent = errors.New("sparse: row and column entries don't match")

	// ErrBadShape indicates a non-positive row or column count was
	// requested at construction.
	ErrBadShape = errors.New("sparse: shape must have rows >= 1 and cols >= 1")

	// ErrRowNotEmpty indicates EraseRow's post-condition (row empty)
	// failed to hold — surfaced only by internal invariant checks, never
	// under correct elimination use.
	ErrRowNotEmpty = errors.New("sparse: row not empty after elimination sweep")
)
