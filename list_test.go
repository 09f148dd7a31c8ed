package expiring_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mcheviron/expiring"
	"github.com/stretchr/testify/require"
)

func TestListAppend(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[string](th.config(3))
	l.Append("foo")
	l.Append("bar")
	require.Equal(t, []string{"foo", "bar"}, l.Snapshot())
}

func TestListExtend(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[string](th.config(3))
	l.Extend("foo", "bar")
	require.Equal(t, []string{"foo", "bar"}, l.Snapshot())

	var digits []string
	for i := 0; i < 5; i++ {
		digits = append(digits, strconv.Itoa(i))
	}
	l.Extend(digits...)
	require.Equal(t, []string{"foo", "bar", "0", "1", "2", "3", "4"}, l.Snapshot())
}

func TestListExtendSharesTick(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[int](th.config(2))
	l.Append(0)
	th.advance(1)
	l.Extend(1, 2, 3)
	th.advance(1)
	require.Equal(t, []int{1, 2, 3}, l.Snapshot())
	th.advance(1)
	require.Empty(t, l.Snapshot())
}

func TestListClear(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[int](th.config(3))
	require.Equal(t, 0, l.Len())
	for i := 0; i < 100; i++ {
		l.Append(i)
	}
	require.Equal(t, 100, l.Len())
	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Snapshot())
}

func TestListExpire(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[string](th.config(3))
	l.Append("foo")
	l.Append("bar")
	require.Equal(t, []string{"foo", "bar"}, l.Snapshot())
	th.advance(1)
	require.Equal(t, []string{"foo", "bar"}, l.Snapshot())
	th.advance(1)
	require.Equal(t, []string{"foo", "bar"}, l.Snapshot())
	th.advance(1)
	require.Empty(t, l.Snapshot())
}

func TestListCount(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[string](th.config(3))
	l.Append("foo")
	l.Append("bar")
	require.Equal(t, 1, l.Count("foo"))
	require.Equal(t, 1, l.Count("bar"))

	th.advance(1)
	for i := 0; i < 10; i++ {
		l.Append("foo")
	}
	require.Equal(t, 11, l.Count("foo"))

	th.advance(2)
	require.Equal(t, 10, l.Count("foo"))
	require.Equal(t, 0, l.Count("bar"))
}

func TestListRemove(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[string](th.config(3))
	l.Append("foo")
	l.Append("bar")
	l.Append("foo")
	require.Equal(t, []string{"foo", "bar", "foo"}, l.Snapshot())

	require.True(t, l.Remove("bar"))
	require.Equal(t, []string{"foo", "foo"}, l.Snapshot())

	require.True(t, l.Remove("foo"))
	require.Equal(t, []string{"foo"}, l.Snapshot())
}

func TestListRemoveMissingIsNoop(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[string](th.config(3))
	l.Append("foo")
	require.False(t, l.Remove("baz"))
	require.Equal(t, []string{"foo"}, l.Snapshot())

	th.advance(3)
	require.False(t, l.Remove("foo"))
}

func TestListRemoveThenAppendReusesNodes(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[int](th.config(3))
	for round := 0; round < 3; round++ {
		l.Extend(1, 2, 3)
		require.True(t, l.Remove(2))
		require.Equal(t, []int{1, 3}, l.Snapshot())
		l.Clear()
	}
}

func TestListMaxLength(t *testing.T) {
	th := newTimeHelper(1)
	cfg := th.config(3)
	cfg.MaxLength = 3
	l := expiring.NewList[int](cfg)
	l.Extend(1, 2, 3, 4, 5)
	require.Equal(t, []int{3, 4, 5}, l.Snapshot())
}

func TestListPrefixOrderEviction(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[int](th.config(3))
	for i := 0; i < 6; i++ {
		l.Append(i)
		th.advance(1)
	}
	// At tick 6 entries 0..3 have age >= 3.
	require.Equal(t, []int{4, 5}, l.Snapshot())
}

func TestListFuncEquality(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewListFunc(th.config(3), strings.EqualFold)
	l.Extend("Foo", "FOO", "bar")
	require.Equal(t, 2, l.Count("foo"))
	require.True(t, l.Remove("BAR"))
	require.Equal(t, []string{"Foo", "FOO"}, l.Snapshot())
}

func TestListNonComparableElements(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewListFunc(th.config(3), func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})
	l.Append([]int{1, 2})
	l.Append([]int{1, 2})
	l.Append([]int{3})
	require.Equal(t, 2, l.Count([]int{1, 2}))
}

func TestListShrinksMonotonically(t *testing.T) {
	th := newTimeHelper(1)
	l := expiring.NewList[int](th.config(4))
	for i := 0; i < 6; i++ {
		l.Extend(i, i)
		th.advance(1)
	}

	prev := l.Len()
	for i := 0; i < 6; i++ {
		th.advance(1)
		n := l.Len()
		require.LessOrEqual(t, n, prev)
		prev = n
	}
	require.Equal(t, 0, prev)
}
