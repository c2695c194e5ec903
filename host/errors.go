// Package host adapts the sparse-matrix reduction core to an external
// numeric runtime's wire format: flat packed entry lists in, dense
// column-major result matrices out. It is the only package
// that knows about the packed integer encoding; reducer and sparse never
// see it.
package host

import "errors"

var (
	// ErrBadPackedEntry indicates a packed word decoded to an out-of-range
	// row, column, or a value other than +1/-1.
	ErrBadPackedEntry = errors.New("host: malformed packed entry")

	// ErrNotImplemented marks a documented gap: the 32-bit host packed
	// layout is declared but deliberately left unimplemented. See
	// DESIGN.md.
	ErrNotImplemented = errors.New("host: not implemented")
)
