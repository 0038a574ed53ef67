package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	l := NewList[int]()
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())

	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	require.Equal(t, 3, l.Len())
	require.Equal(t, 1, l.Front().Value)
	require.Equal(t, 3, l.Back().Value)

	v, err := l.Remove(l.Front())
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, l.Front().Value)
}

func TestRemoveForeignElement(t *testing.T) {
	l := NewList[int]()
	other := NewList[int]()
	e := other.PushBack(1)

	_, err := l.Remove(e)
	require.ErrorIs(t, err, ErrorListElementIsNotInTheList)

	_, err = l.Remove(nil)
	require.ErrorIs(t, err, ErrorListElementIsNil)
}

func TestSimpleIteration(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := NewList[int]()
		it := NewIterator(l)
		for it.Next() {
			t.Fatal("no cycle for empty list")
		}
	})

	t.Run("step iteration", func(t *testing.T) {
		l := NewList[int]()
		l.PushBack(1)
		l.PushBack(2)
		l.PushBack(3)
		it := NewIterator(l)
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Value)
		require.True(t, it.Next())
		require.Equal(t, 2, it.Current().Value)
		require.True(t, it.Next())
		require.Equal(t, 3, it.Current().Value)
		require.False(t, it.Next())
	})

	t.Run("consume iteration", func(t *testing.T) {
		testCases := [][]int{
			{1},
			{1, 2, 3},
			{4, 3, 2, 1},
		}
		for _, tc := range testCases {
			l := NewList[int]()
			for _, v := range tc {
				l.PushBack(v)
			}

			it := NewIterator(l)
			result := []int{}

			for it.Next() {
				result = append(result, it.Current().Value)
				_, err := l.Remove(it.Current())
				require.NoError(t, err)
			}

			require.Equal(t, 0, l.Len())
			require.Equal(t, tc, result)
		}
	})
}
