// Package stack provides a LIFO adapter over any container that can push
// and pop at its back.
package stack

import "go.lepak.sg/sx/list"

// Container is what a Stack stores its elements in.
// *list.Reverse and *vector.Vector both satisfy it.
type Container[T any] interface {
	PushBack(T)
	PopBack() T
	Back() T
	Len() int
}

var _ Container[int] = (*list.Reverse[int])(nil)

// Stack is a LIFO stack. Use New or NewWith to create one.
type Stack[T any] struct {
	c Container[T]
}

// New returns an empty Stack backed by a list.Reverse.
func New[T any]() *Stack[T] {
	return NewWith[T](list.NewReverse[T]())
}

// NewWith returns a Stack that stores its elements in c.
// c may already hold elements; its back is the top of the stack.
// NewWith panics if c is a nil interface. A typed nil pointer such as
// (*vector.Vector[T])(nil) is not detected here and fails on first use.
func NewWith[T any](c Container[T]) *Stack[T] {
	if c == nil {
		panic("stack: nil container")
	}
	return &Stack[T]{c: c}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.c.PushBack(v)
}

// Pop removes and returns the top of the stack.
// It panics if the stack is empty.
func (s *Stack[T]) Pop() T {
	if s.c.Len() == 0 {
		panic("stack: Pop on empty Stack")
	}
	return s.c.PopBack()
}

// Top returns the top of the stack without removing it.
// It panics if the stack is empty.
func (s *Stack[T]) Top() T {
	if s.c.Len() == 0 {
		panic("stack: Top on empty Stack")
	}
	return s.c.Back()
}

func (s *Stack[T]) Len() int {
	return s.c.Len()
}

func (s *Stack[T]) Empty() bool {
	return s.c.Len() == 0
}
