package expiring_test

import (
	"testing"

	"github.com/mcheviron/expiring"
	"github.com/stretchr/testify/require"
)

func TestSumChange(t *testing.T) {
	th := newTimeHelper(1)
	s := expiring.NewSum[int](th.config(3))

	require.Equal(t, 0, s.Value())
	s.Change(1)
	require.Equal(t, 1, s.Value())
	s.Change(3)
	require.Equal(t, 4, s.Value())
	s.Change(-10)
	require.Equal(t, -6, s.Value())
}

func TestSumExpire(t *testing.T) {
	th := newTimeHelper(1)
	s := expiring.NewSum[int](th.config(3))

	require.Equal(t, 0, s.Value())
	s.Change(1)
	th.advance(1)
	require.Equal(t, 1, s.Value())
	s.Change(1)
	th.advance(1)
	require.Equal(t, 2, s.Value())
	s.Change(1)
	th.advance(1)
	require.Equal(t, 2, s.Value())
	s.Change(1)
	th.advance(1)
	require.Equal(t, 2, s.Value())
	th.advance(2)
	require.Equal(t, 0, s.Value())
	require.Equal(t, 0, s.Len())
}

func TestSumFloat(t *testing.T) {
	th := newTimeHelper(1)
	s := expiring.NewSum[float64](th.config(2))

	s.Change(0.5)
	th.advance(1)
	s.Change(-2.25)
	require.InDelta(t, -1.75, s.Value(), 1e-9)

	th.advance(1)
	require.InDelta(t, -2.25, s.Value(), 1e-9)
}

func TestSumMaxLengthDropsOldest(t *testing.T) {
	th := newTimeHelper(1)
	cfg := th.config(10)
	cfg.MaxLength = 2
	s := expiring.NewSum[int](cfg)

	s.Change(100)
	s.Change(1)
	s.Change(2)
	require.Equal(t, 3, s.Value())
	require.Equal(t, 2, s.Len())
}

func TestSumClear(t *testing.T) {
	th := newTimeHelper(1)
	s := expiring.NewSum[int64](th.config(3))
	s.Change(7)
	s.Clear()
	require.Equal(t, int64(0), s.Value())
}
