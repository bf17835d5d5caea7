// Package list provides singly linked lists: Forward, which grows at
// the back and shrinks at the front, Reverse, which only touches its
// back, and Circular, whose tail links back to its head.
//
// None of the lists are safe for concurrent use.
package list

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	v    T
	next *node[T]
}

// Forward is a singly linked list with head and tail pointers.
// The zero Forward is an empty list ready for use.
//
// Invariants:
//   - size == 0 if and only if head == nil and tail == nil
//   - tail.next is always nil
type Forward[T any] struct {
	head, tail *node[T]
	size       int
}

// NewForward returns an empty Forward. It is equivalent to &Forward[T]{}.
func NewForward[T any]() *Forward[T] {
	return &Forward[T]{}
}

// Len returns the number of elements in the list.
func (l *Forward[T]) Len() int {
	return l.size
}

// Empty returns true if the list has no elements.
func (l *Forward[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element. It panics if the list is empty.
func (l *Forward[T]) Front() T {
	if l.head == nil {
		panic("list: Front on empty Forward")
	}
	return l.head.v
}

// Back returns the last element. It panics if the list is empty.
func (l *Forward[T]) Back() T {
	if l.tail == nil {
		panic("list: Back on empty Forward")
	}
	return l.tail.v
}

// PushBack appends v to the end of the list.
func (l *Forward[T]) PushBack(v T) {
	n := &node[T]{v: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// PushFront prepends v to the start of the list.
func (l *Forward[T]) PushFront(v T) {
	n := &node[T]{v: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PopFront removes and returns the first element.
// It panics if the list is empty.
func (l *Forward[T]) PopFront() T {
	if l.head == nil {
		panic("list: PopFront on empty Forward")
	}

	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	// don't keep the rest of the list reachable from a popped node
	n.next = nil
	l.size--

	return n.v
}

// Iterator returns an iterator from the front to the back of the list.
// Mutating the list during iteration has undefined results.
func (l *Forward[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// Slice copies the elements into a new slice, front first.
func (l *Forward[T]) Slice() []T {
	return collect[T](l.Iterator(), l.size)
}

// String returns the elements separated by single spaces.
func (l *Forward[T]) String() string {
	return join[T](l.Iterator())
}

// Iterator walks a chain of nodes. It is shared by Forward and Reverse.
// Next must be called before every call to Item.
type Iterator[T any] struct {
	at, next *node[T]
}

// Next advances the iterator and returns true if there is an element
// to read with Item.
func (i *Iterator[T]) Next() bool {
	if i == nil || i.next == nil {
		return false
	}
	i.at, i.next = i.next, i.next.next
	return true
}

// Item returns the current element.
func (i *Iterator[T]) Item() T {
	return i.at.v
}

func collect[T any](i *Iterator[T], sizeHint int) []T {
	out := make([]T, 0, sizeHint)
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

func join[T any](i *Iterator[T]) string {
	var sb strings.Builder
	first := true
	for i.Next() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(fmt.Sprint(i.Item()))
	}
	return sb.String()
}
