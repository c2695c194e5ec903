package reducer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homred/coeff"
	"github.com/katalvlaran/homred/core"
	"github.com/katalvlaran/homred/fixtures"
	"github.com/katalvlaran/homred/reducer"
	"github.com/katalvlaran/homred/sparse"
)

// graphFixtures returns a handful of small graphs spanning the shapes
// fixtures can produce: complete graphs, cycles, a path (tree), and a
// couple of random sparse graphs at fixed seeds.
func graphFixtures() map[string]*core.Graph {
	return map[string]*core.Graph{
		"K3":            fixtures.Complete(3),
		"K5":            fixtures.Complete(5),
		"cycle4":        fixtures.Cycle(4),
		"cycle6":        fixtures.Cycle(6),
		"path5":         fixtures.Path(5),
		"randomSparse1": fixtures.RandomSparse(8, 0.35, 1),
		"randomSparse2": fixtures.RandomSparse(12, 0.2, 7),
	}
}

// denseInt builds a sparse.Matrix over IntRing from a row-major literal,
// skipping zero cells.
func denseInt(t *testing.T, rows [][]int64) *sparse.Matrix[int64, coeff.IntRing] {
	t.Helper()
	numRows := len(rows)
	numCols := 0
	if numRows > 0 {
		numCols = len(rows[0])
	}
	m, err := sparse.New[int64](numRows, numCols, coeff.IntRing{}, sparse.WithDebugChecks(true))
	require.NoError(t, err)
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				require.NoError(t, m.Put(r+1, c+1, v))
			}
		}
	}
	return m
}

func TestReduceS1IdentityCollapse(t *testing.T) {
	d0 := denseInt(t, [][]int64{{1}})
	c, err := reducer.NewComplex([]int{1, 1}, []*sparse.Matrix[int64, coeff.IntRing]{d0}, coeff.IntRing{})
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, c.Live)
}

func TestReduceS2UnitMidChain(t *testing.T) {
	d0 := denseInt(t, [][]int64{{1}, {0}})
	d1 := denseInt(t, [][]int64{{0, 1}})
	c, err := reducer.NewComplex([]int{1, 2, 1}, []*sparse.Matrix[int64, coeff.IntRing]{d0, d1}, coeff.IntRing{})
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, c.Live)
}

func TestReduceS3NoPivot(t *testing.T) {
	d0 := denseInt(t, [][]int64{{2}})
	c, err := reducer.NewComplex([]int{1, 1}, []*sparse.Matrix[int64, coeff.IntRing]{d0}, coeff.IntRing{})
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, c.Live)

	v, err := d0.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
}

func TestReduceS4ShortPassSuffices(t *testing.T) {
	// Every row in both boundary matrices carries at most one entry, so
	// the short pass alone drives every group to a fixed point: group 0's
	// two generators pair off against group 1's first two, and group 1's
	// surviving third generator pairs off against group 2's only
	// generator, collapsing the whole complex.
	d0 := denseInt(t, [][]int64{{1, 0}, {0, 1}, {0, 0}})
	d1 := denseInt(t, [][]int64{{0, 0, 1}})
	c, err := reducer.NewComplex([]int{2, 3, 1}, []*sparse.Matrix[int64, coeff.IntRing]{d0, d1}, coeff.IntRing{})
	require.NoError(t, err)

	stats, err := reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, c.Live)

	for g, gs := range stats.ByGroup {
		require.Zerof(t, gs.FullPass, "group %d should have been fully resolved by the short pass", g)
	}
}

func TestReduceS5GroupRingUnit(t *testing.T) {
	m, err := sparse.New[coeff.GroupElem](1, 1, coeff.GroupRing{})
	require.NoError(t, err)
	require.NoError(t, m.Put(1, 1, coeff.GroupElem{B: 1})) // t, magnitude 1

	c, err := reducer.NewComplex([]int{1, 1}, []*sparse.Matrix[coeff.GroupElem, coeff.GroupRing]{m}, coeff.GroupRing{})
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, c.Live)
}

func TestReduceS6OverflowGuard(t *testing.T) {
	m, err := sparse.New[int64](2, 2, coeff.IntRing{}, sparse.WithMaxMagnitude(10))
	require.NoError(t, err)
	// row1 has a unit pivot at col1; row2's entry at col1 is large enough
	// that the column sweep's update overflows before the elimination
	// would otherwise complete.
	require.NoError(t, m.Put(1, 1, 1))
	require.NoError(t, m.Put(1, 2, 7))
	require.NoError(t, m.Put(2, 1, 9))

	c, err := reducer.NewComplex([]int{2, 2}, []*sparse.Matrix[int64, coeff.IntRing]{m}, coeff.IntRing{})
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.ErrorIs(t, err, sparse.ErrOverflow)
}

func TestReduceIdempotent(t *testing.T) {
	d0 := denseInt(t, [][]int64{{1}, {0}})
	d1 := denseInt(t, [][]int64{{0, 1}})
	c, err := reducer.NewComplex([]int{1, 2, 1}, []*sparse.Matrix[int64, coeff.IntRing]{d0, d1}, coeff.IntRing{})
	require.NoError(t, err)

	_, err = reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	before := append([]int(nil), c.Live...)

	stats, err := reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, before, c.Live)
	require.Zero(t, stats.Killed)
}

// TestReduceIdempotentAcrossFixtures checks property 6 (idempotence)
// over several fixtures-generated complexes, not just one hand-built
// one: reducing an already-reduced complex a second time must leave
// Live[] unchanged and kill nothing further.
func TestReduceIdempotentAcrossFixtures(t *testing.T) {
	for name, g := range graphFixtures() {
		t.Run(name, func(t *testing.T) {
			c, err := fixtures.IncidenceComplex(g)
			require.NoError(t, err)

			_, err = reducer.Reduce(context.Background(), c)
			require.NoError(t, err)
			before := append([]int(nil), c.Live...)

			stats, err := reducer.Reduce(context.Background(), c)
			require.NoError(t, err)
			require.Equal(t, before, c.Live)
			require.Zero(t, stats.Killed)
		})
	}
}

// TestReducePivotOrderIndependence checks property 8: relabeling a
// graph's generators (processing the same edges and vertices in
// reversed order) must not change the surviving rank per group, since
// homology doesn't depend on how generators are indexed.
func TestReducePivotOrderIndependence(t *testing.T) {
	for name, g := range graphFixtures() {
		t.Run(name, func(t *testing.T) {
			forward, err := fixtures.IncidenceComplex(g)
			require.NoError(t, err)
			_, err = reducer.Reduce(context.Background(), forward)
			require.NoError(t, err)

			reversed, err := fixtures.IncidenceComplexReversed(g)
			require.NoError(t, err)
			_, err = reducer.Reduce(context.Background(), reversed)
			require.NoError(t, err)

			require.Equal(t, forward.Live, reversed.Live)
		})
	}
}

func TestReduceNoOpOnEmptyComplex(t *testing.T) {
	c, err := reducer.NewComplex([]int{0, 0, 0}, nil, coeff.IntRing{})
	require.NoError(t, err)
	require.True(t, c.Empty())

	stats, err := reducer.Reduce(context.Background(), c)
	require.NoError(t, err)
	require.Zero(t, stats.Killed)
	require.Equal(t, []int{0, 0, 0}, c.Live)
}

func TestReduceRespectsContextCancellation(t *testing.T) {
	d0 := denseInt(t, [][]int64{{1}, {0}})
	d1 := denseInt(t, [][]int64{{0, 1}})
	c, err := reducer.NewComplex([]int{1, 2, 1}, []*sparse.Matrix[int64, coeff.IntRing]{d0, d1}, coeff.IntRing{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = reducer.Reduce(ctx, c)
	require.ErrorIs(t, err, context.Canceled)
}
