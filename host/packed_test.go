package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homred/host"
)

func TestUnpackPackIntRoundTrip(t *testing.T) {
	pm := host.PackedMatrix{Entries: []int64{
		1*(0<<32) + 0, // (0,0) = +1
		-(1*(1<<32) + 1),
	}}
	m, err := host.UnpackInt(pm, 2, 2)
	require.NoError(t, err)

	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
	v, err = m.Get(2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	out, err := host.PackInt(m)
	require.NoError(t, err)
	require.ElementsMatch(t, pm.Entries, out.Entries)
}

func TestUnpackIntRejectsOutOfRange(t *testing.T) {
	pm := host.PackedMatrix{Entries: []int64{1*(5<<32) + 0}}
	_, err := host.UnpackInt(pm, 2, 2)
	require.ErrorIs(t, err, host.ErrBadPackedEntry)
}

func TestWidePackingNotImplemented(t *testing.T) {
	_, err := host.UnpackIntWide(host.PackedMatrixWide{}, 1, 1)
	require.ErrorIs(t, err, host.ErrNotImplemented)

	_, err = host.PackIntWide(nil)
	require.ErrorIs(t, err, host.ErrNotImplemented)
}

func TestReduceS1ViaHost(t *testing.T) {
	pm := host.PackedMatrix{Entries: []int64{0}} // (0,0) = +1
	res, err := host.Reduce(context.Background(), []int{1, 1}, []host.PackedMatrix{pm})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, res.Ranks)
	require.Equal(t, host.ZeroPlaceholder, res.Matrices[0])
}

func TestUnpackGroupSumsComponents(t *testing.T) {
	// row0 gets both an A and a B contribution at col0: a + t.
	pgm := host.PackedGroupMatrix{Entries: []int64{
		(0<<1 | 0) << 32,
		(0<<1 | 1) << 32,
	}}
	m, err := host.UnpackGroup(pgm, 1, 1)
	require.NoError(t, err)
	v, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.A)
	require.Equal(t, int64(1), v.B)
}
