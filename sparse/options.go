package sparse

import "github.com/katalvlaran/homred/coeff"

// Options configures a Matrix at construction time: unexported fields,
// WithX constructors, resolved once at construction.
type Options struct {
	debugChecks  bool
	maxMagnitude int64
}

// Option configures a Matrix's Options.
type Option func(*Options)

// WithDebugChecks enables the bilateral-consistency cross-check of a
// single cell: Put checks the cell it wrote, and Get compares the column
// view with the row view it read. Remove, EraseRow, EraseCol, AddRows and
// AddCols run no check. Off by default since each check adds a walk of
// the cell's row and column lists.
func WithDebugChecks(enabled bool) Option {
	return func(o *Options) { o.debugChecks = enabled }
}

// WithMaxMagnitude overrides the overflow fence (default
// coeff.DefaultMaxMagnitude). A tighter bound is useful in tests that
// want to exercise ErrOverflow deterministically.
func WithMaxMagnitude(max int64) Option {
	return func(o *Options) { o.maxMagnitude = max }
}

func defaultOptions() Options {
	return Options{debugChecks: false, maxMagnitude: coeff.DefaultMaxMagnitude}
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
