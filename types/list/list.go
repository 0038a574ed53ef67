package list

// List is a doubly linked list used as a FIFO queue of resting orders.
// A sentinel root element keeps push/pop/remove branch-free.
// NOTE: Not thread-safe.
type List[T any] struct {
	root Element[T] // sentinel, only &root, root.prev and root.next are used
	len  int        // current list length excluding the sentinel
}

// Element is an element of a linked list.
type Element[T any] struct {
	list *List[T]
	prev *Element[T]
	next *Element[T]

	// The value stored with this element.
	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// NewList creates and returns new List instance.
func NewList[T any]() *List[T] {
	l := new(List[T])
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of elements of list l.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element of list l or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of list l or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushBack inserts a new element e with value v at the back of list l and returns e.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v}
	at := l.root.prev
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// Remove removes e from l if e is an element of list l.
func (l *List[T]) Remove(e *Element[T]) (v T, err error) {
	if e == nil {
		err = ErrorListElementIsNil
		return
	}
	if e.list != l {
		err = ErrorListElementIsNotInTheList
		return
	}
	v = e.Value
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	l.len--
	return
}

// Clean cleans list l by removing all existing elements.
func (l *List[T]) Clean() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}
