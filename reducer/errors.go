// Package reducer orchestrates elementary simplicial collapses over a
// chain complex of sparse boundary matrices. It is the
// component that decides *which* pivots to eliminate and *when*; all
// bilateral-consistency bookkeeping during an elimination is delegated
// to sparse.Matrix.
package reducer

import "errors"

var (
	// ErrBadRanks indicates a negative rank was supplied.
	ErrBadRanks = errors.New("reducer: ranks must be non-negative")

	// ErrMaterializeNil indicates a boundary was requested but the
	// complex has neither a pre-populated matrix nor a Materialize
	// callback for that slot.
	ErrMaterializeNil = errors.New("reducer: no boundary matrix and no materializer configured")

	// ErrRowNotClean indicates the post-sweep assertion failed: after the
	// column sweep, row[gen] held more than the pivot
	// entry, or after kill_gen it was not empty. This can only happen on
	// an internal bug, never on valid input.
	ErrRowNotClean = errors.New("reducer: row not reduced to a single pivot during elimination")
)
