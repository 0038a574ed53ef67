package avl

import (
	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) implemented as an AVL tree
// (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log n) operations on insertion, searching, and deletion.
// The most-left node is cached so best-key lookup is O(1).
type Tree[K, V any] struct {
	compare   func(a, b K) int
	root      *Node[K, V]
	mostLeft  *Node[K, V]
	mostRight *Node[K, V]
	size      int
}

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Contains checks if a node with given key exists in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find finds the node with given key in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (node *Node[K, V], err error) {
	node = &Node[K, V]{
		key:   key,
		value: value,
	}
	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.add(node, t.compare)
		if err != nil {
			return nil, err
		}
		t.root = newRoot
	}
	t.size++
	// Update most left/right nodes
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) > 0 {
		t.mostRight = node
	}
	return
}

// Remove removes a node with given key from the tree.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	var node, newRoot *Node[K, V]
	node, newRoot, err = t.root.remove(key, t.compare)
	if err != nil {
		return
	}
	t.root = newRoot
	value = node.value
	t.size--
	// Update most left/right nodes
	if t.mostLeft == node {
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		} else {
			t.mostLeft = nil
		}
	}
	if t.mostRight == node {
		if t.root != nil {
			t.mostRight = t.root.MostRight()
		} else {
			t.mostRight = nil
		}
	}
	return
}

// MostLeft returns most left node.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// MostRight returns most right node.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	return t.mostRight
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.mostLeft = nil
	t.mostRight = nil
	t.size = 0
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by its own value, and then its right branch.
// This guarantees iterating values in a sorted order.
func (t *Tree[K, V]) IterateInOrder(f func(key K, value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(n *Node[K, V]) bool {
		return f(n.key, n.value)
	})
}
