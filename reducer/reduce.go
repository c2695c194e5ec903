package reducer

import (
	"context"
	"fmt"

	"github.com/katalvlaran/homred/coeff"
)

// Reduce collapses c in place by elementary simplicial collapse and
// returns the elimination statistics.
// Groups are visited from FirstGroup+1 through LastGroup; at each group g
// the short pass (rows with <= 2 entries) runs to a fixed point before the
// full pass does, since a short-pass pivot can turn a longer row short.
// ctx is checked between groups so a caller can cancel a reduction of a
// large complex without leaving it half-mutated beyond the current group.
func Reduce[T any, R coeff.Value[T]](ctx context.Context, c *Complex[T, R]) (*Stats, error) {
	stats := NewStats()
	if c.Empty() {
		return stats, nil
	}

	for g := c.FirstGroup + 1; g <= c.LastGroup; g++ {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		for _, k := range [3]int{g - 2, g - 1, g} {
			if c.HasBoundary(k) {
				if _, err := c.Boundary(k); err != nil {
					return stats, fmt.Errorf("group %d: %w", g, err)
				}
			}
		}

		for {
			progressed, err := eliminate(c, g, true, stats)
			if err != nil {
				return stats, fmt.Errorf("group %d short pass: %w", g, err)
			}
			if !progressed {
				break
			}
		}
		for {
			progressed, err := eliminate(c, g, false, stats)
			if err != nil {
				return stats, fmt.Errorf("group %d full pass: %w", g, err)
			}
			if !progressed {
				break
			}
		}
	}
	return stats, nil
}
