package list

// Reverse is a singly linked list that is built back to front: only the
// last element is reachable directly, and every node links to the node
// pushed before it. It is the backing store for stack.Stack.
// The zero Reverse is an empty list ready for use.
type Reverse[T any] struct {
	tail *node[T]
	size int
}

// NewReverse returns an empty Reverse.
func NewReverse[T any]() *Reverse[T] {
	return &Reverse[T]{}
}

func (l *Reverse[T]) Len() int {
	return l.size
}

func (l *Reverse[T]) Empty() bool {
	return l.size == 0
}

// Back returns the last element pushed. It panics if the list is empty.
func (l *Reverse[T]) Back() T {
	if l.tail == nil {
		panic("list: Back on empty Reverse")
	}
	return l.tail.v
}

// PushBack appends v to the end of the list.
func (l *Reverse[T]) PushBack(v T) {
	l.tail = &node[T]{v: v, next: l.tail}
	l.size++
}

// PopBack removes and returns the last element.
// It panics if the list is empty.
func (l *Reverse[T]) PopBack() T {
	if l.tail == nil {
		panic("list: PopBack on empty Reverse")
	}

	n := l.tail
	l.tail = n.next
	n.next = nil
	l.size--

	return n.v
}

// Iterator returns an iterator from the back to the front of the list,
// that is, in the order PopBack would return the elements.
func (l *Reverse[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.tail}
}

// Slice copies the elements into a new slice, back first.
func (l *Reverse[T]) Slice() []T {
	return collect[T](l.Iterator(), l.size)
}

// String returns the elements from the back, separated by single spaces.
func (l *Reverse[T]) String() string {
	return join[T](l.Iterator())
}
