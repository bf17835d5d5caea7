// Package queue provides a FIFO adapter over any container that can push
// at its back and pop at its front.
package queue

import "go.lepak.sg/sx/list"

// Container is what a Queue stores its elements in.
// *list.Forward and *vector.Vector both satisfy it. Popping the front of
// a Vector shifts every element, which is fine for short queues.
type Container[T any] interface {
	PushBack(T)
	PopFront() T
	Front() T
	Back() T
	Len() int
}

var _ Container[int] = (*list.Forward[int])(nil)

// Queue is a FIFO queue. Use New or NewWith to create one.
type Queue[T any] struct {
	c Container[T]
}

// New returns an empty Queue backed by a list.Forward.
func New[T any]() *Queue[T] {
	return NewWith[T](list.NewForward[T]())
}

// NewWith returns a Queue that stores its elements in c.
// c may already hold elements; its front is the head of the queue.
// NewWith panics if c is a nil interface. A typed nil pointer such as
// (*vector.Vector[T])(nil) is not detected here and fails on first use.
func NewWith[T any](c Container[T]) *Queue[T] {
	if c == nil {
		panic("queue: nil container")
	}
	return &Queue[T]{c: c}
}

// Push appends v to the tail of the queue.
func (q *Queue[T]) Push(v T) {
	q.c.PushBack(v)
}

// Pop removes and returns the head of the queue.
// It panics if the queue is empty.
func (q *Queue[T]) Pop() T {
	if q.c.Len() == 0 {
		panic("queue: Pop on empty Queue")
	}
	return q.c.PopFront()
}

// Front returns the head of the queue. It panics if the queue is empty.
func (q *Queue[T]) Front() T {
	if q.c.Len() == 0 {
		panic("queue: Front on empty Queue")
	}
	return q.c.Front()
}

// Back returns the most recently pushed element.
// It panics if the queue is empty.
func (q *Queue[T]) Back() T {
	if q.c.Len() == 0 {
		panic("queue: Back on empty Queue")
	}
	return q.c.Back()
}

func (q *Queue[T]) Len() int {
	return q.c.Len()
}

func (q *Queue[T]) Empty() bool {
	return q.c.Len() == 0
}
