package list

import (
	"fmt"
	"strings"
)

// Element is an element of a Circular list.
type Element[T any] struct {
	Value T

	next *Element[T]
	list *Circular[T]
}

// Next returns the element after e. In a circular list the element after
// the back is the front, so Next only returns nil if e has been removed.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.next
}

// Circular is a singly linked list whose tail links back to its head.
// It suits cyclic elimination games: walk with Next, drop with Remove.
// The zero Circular is an empty list ready for use.
//
// Invariants:
//   - size == 0 if and only if head == nil and tail == nil
//   - otherwise tail.next == head
type Circular[T any] struct {
	head, tail *Element[T]
	size       int
}

// NewCircular returns an empty Circular.
func NewCircular[T any]() *Circular[T] {
	return &Circular[T]{}
}

func (l *Circular[T]) Len() int {
	return l.size
}

func (l *Circular[T]) Empty() bool {
	return l.size == 0
}

// Front returns the head of the list, or nil if the list is empty.
func (l *Circular[T]) Front() *Element[T] {
	return l.head
}

// Back returns the tail of the list, or nil if the list is empty.
func (l *Circular[T]) Back() *Element[T] {
	return l.tail
}

func (l *Circular[T]) insertFirst(e *Element[T]) {
	e.next = e
	l.head, l.tail = e, e
}

// PushBack inserts v between the tail and the head, and makes it the new
// tail. It returns the new element.
func (l *Circular[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l}
	if l.tail == nil {
		l.insertFirst(e)
	} else {
		e.next = l.head
		l.tail.next = e
		l.tail = e
	}
	l.size++
	return e
}

// PushFront inserts v between the tail and the head, and makes it the new
// head. It returns the new element.
func (l *Circular[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l}
	if l.head == nil {
		l.insertFirst(e)
	} else {
		e.next = l.head
		l.tail.next = e
		l.head = e
	}
	l.size++
	return e
}

// Remove unlinks e from the list and returns the element that followed
// it, or nil if the list is now empty.
// The list is singly linked, so this takes time proportional to the
// distance from the head to e.
// Remove panics if e does not belong to l.
func (l *Circular[T]) Remove(e *Element[T]) *Element[T] {
	if e == nil || e.list != l {
		panic("list: Remove of element not in this Circular")
	}

	var next *Element[T]
	if l.size == 1 {
		l.head, l.tail = nil, nil
	} else {
		prev := l.tail
		for prev.next != e {
			prev = prev.next
		}
		prev.next = e.next
		if l.head == e {
			l.head = e.next
		}
		if l.tail == e {
			l.tail = prev
		}
		next = e.next
	}

	e.next, e.list = nil, nil
	l.size--

	return next
}

// Slice copies the values into a new slice, starting from the head.
func (l *Circular[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for e, i := l.head, 0; i < l.size; e, i = e.next, i+1 {
		out = append(out, e.Value)
	}
	return out
}

// String returns the values from the head, separated by single spaces.
func (l *Circular[T]) String() string {
	var sb strings.Builder
	for e, i := l.head, 0; i < l.size; e, i = e.next, i+1 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprint(e.Value))
	}
	return sb.String()
}
