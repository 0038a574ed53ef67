package avl

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeAddFind(t *testing.T) {
	tree := NewOrderedTree[int, string]()

	_, err := tree.Add(2, "two")
	require.NoError(t, err)
	_, err = tree.Add(1, "one")
	require.NoError(t, err)
	_, err = tree.Add(3, "three")
	require.NoError(t, err)

	require.Equal(t, 3, tree.Size())
	require.True(t, tree.Contains(2))
	require.False(t, tree.Contains(4))
	require.Equal(t, "one", tree.Find(1).Value())
	require.Nil(t, tree.Find(42))

	_, err = tree.Add(2, "dup")
	require.ErrorIs(t, err, ErrorTreeNodeDuplicate)
	require.Equal(t, 3, tree.Size())
}

func TestTreeMostLeftMostRight(t *testing.T) {
	tree := NewOrderedTree[int, int]()
	require.Nil(t, tree.MostLeft())
	require.Nil(t, tree.MostRight())

	for _, k := range []int{5, 1, 9, 3, 7} {
		_, err := tree.Add(k, k*10)
		require.NoError(t, err)
	}
	require.Equal(t, 1, tree.MostLeft().Key())
	require.Equal(t, 9, tree.MostRight().Key())

	_, err := tree.Remove(1)
	require.NoError(t, err)
	require.Equal(t, 3, tree.MostLeft().Key())

	_, err = tree.Remove(9)
	require.NoError(t, err)
	require.Equal(t, 7, tree.MostRight().Key())
}

func TestTreeReversedComparator(t *testing.T) {
	// Bid-ladder style: the most-left node holds the greatest key.
	tree := NewTree[int, int](func(a, b int) int { return b - a })
	for _, k := range []int{10, 30, 20} {
		_, err := tree.Add(k, k)
		require.NoError(t, err)
	}
	require.Equal(t, 30, tree.MostLeft().Key())
	require.Equal(t, 10, tree.MostRight().Key())
}

func TestTreeRemove(t *testing.T) {
	tree := NewOrderedTree[int, int]()

	_, err := tree.Remove(1)
	require.ErrorIs(t, err, ErrorTreeNodeNotFound)

	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		_, err := tree.Add(k, k)
		require.NoError(t, err)
	}

	v, err := tree.Remove(4) // two children
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = tree.Remove(6) // single child after prior removal
	require.NoError(t, err)
	require.Equal(t, 6, v)

	_, err = tree.Remove(4)
	require.ErrorIs(t, err, ErrorTreeNodeNotFound)

	got := []int{}
	tree.IterateInOrder(func(k, _ int) bool {
		got = append(got, k)
		return false
	})
	require.Equal(t, []int{1, 2, 3, 5, 7}, got)
}

func TestTreeNextRight(t *testing.T) {
	tree := NewOrderedTree[int, int]()
	keys := []int{8, 4, 12, 2, 6, 10, 14}
	for _, k := range keys {
		_, err := tree.Add(k, k)
		require.NoError(t, err)
	}

	got := []int{}
	for node := tree.MostLeft(); node != nil; node = node.NextRight() {
		got = append(got, node.Key())
	}
	require.Equal(t, []int{2, 4, 6, 8, 10, 12, 14}, got)
}

func TestTreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewOrderedTree[int, int]()
	present := map[int]bool{}

	for i := 0; i < 5000; i++ {
		k := rng.Intn(500)
		if present[k] {
			_, err := tree.Remove(k)
			require.NoError(t, err)
			delete(present, k)
		} else {
			_, err := tree.Add(k, k)
			require.NoError(t, err)
			present[k] = true
		}

		require.Equal(t, len(present), tree.Size())
	}

	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	sort.Ints(want)

	got := []int{}
	tree.IterateInOrder(func(k, _ int) bool {
		got = append(got, k)
		return false
	})
	require.Equal(t, want, got)

	if len(want) > 0 {
		require.Equal(t, want[0], tree.MostLeft().Key())
		require.Equal(t, want[len(want)-1], tree.MostRight().Key())
	}
}
