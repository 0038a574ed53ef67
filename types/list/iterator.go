package list

// Iterator walks the list front to back and stays valid when the current
// element is removed from the list mid-iteration.
type Iterator[T any] struct {
	list    *List[T]
	prev    *Element[T]
	current *Element[T]
	next    *Element[T]
}

// NewIterator creates an iterator. The iterator is not valid until Next() is called.
func NewIterator[T any](list *List[T]) Iterator[T] {
	return Iterator[T]{
		list: list,
		prev: &list.root,
	}
}

func (it *Iterator[T]) Current() *Element[T] {
	return it.current
}

func (it *Iterator[T]) Next() bool {
	switch {
	case it.prev == &it.list.root && it.current == nil:
		// start of iteration
		it.current = it.list.Front()
	case it.prev == &it.list.root && it.current != it.list.Front():
		// first element was removed
		it.current = it.list.Front()
	case it.prev != &it.list.root && it.prev.Next() != it.current:
		// middle element was removed
		it.current = it.prev.Next()
	default:
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		return false
	}
	it.next = it.current.Next()
	return true
}

func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}
