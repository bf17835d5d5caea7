// Package heap provides a binary min-heap stored in a vector.Vector.
package heap

import (
	"go.lepak.sg/sx/tree/array"
	"go.lepak.sg/sx/vector"
	"golang.org/x/exp/constraints"
)

// MinHeap keeps the smallest element at index 0. Every element is no
// greater than its children at array.Left(i) and array.Right(i).
// The zero MinHeap is empty and ready for use.
type MinHeap[T constraints.Ordered] struct {
	v vector.Vector[T]
}

// FromSlice builds a heap holding a copy of s in O(n).
func FromSlice[T constraints.Ordered](s []T) *MinHeap[T] {
	h := &MinHeap[T]{v: *vector.Of(s...)}
	for i := array.Parent(h.v.Len() - 1); i >= 0; i-- {
		h.Heapify(i)
	}
	return h
}

func (h *MinHeap[T]) Len() int {
	return h.v.Len()
}

func (h *MinHeap[T]) Empty() bool {
	return h.v.Empty()
}

// Top returns the smallest element.
func (h *MinHeap[T]) Top() T {
	if h.v.Empty() {
		panic("heap: Top on empty MinHeap")
	}
	return h.v.Front()
}

// At returns the element at index i in array order.
func (h *MinHeap[T]) At(i int) T {
	return h.v.At(i)
}

func (h *MinHeap[T]) Push(x T) {
	h.v.PushBack(x)
	h.FloatUp(h.v.Len() - 1)
}

// Pop removes and returns the smallest element.
func (h *MinHeap[T]) Pop() T {
	if h.v.Empty() {
		panic("heap: Pop on empty MinHeap")
	}
	top := h.v.Front()
	last := h.v.PopBack()
	if !h.v.Empty() {
		h.v.Set(0, last)
		h.Heapify(0)
	}
	return top
}

// Update replaces the element at index i and restores the heap order.
func (h *MinHeap[T]) Update(i int, x T) {
	old := h.v.At(i)
	h.v.Set(i, x)
	if x < old {
		h.FloatUp(i)
	} else {
		h.Heapify(i)
	}
}

// FloatUp moves the element at index i toward the root while it is
// smaller than its parent. The element is held aside and parents are
// shifted down into the hole, so it is written only once.
func (h *MinHeap[T]) FloatUp(i int) {
	x := h.v.At(i)
	p := array.Parent(i)
	if p < 0 || h.v.At(p) <= x {
		return
	}

	for p >= 0 && h.v.At(p) > x {
		h.v.Set(i, h.v.At(p))
		i = p
		p = array.Parent(i)
	}
	h.v.Set(i, x)
}

// Heapify moves the element at index i down while either child is
// smaller than it.
func (h *MinHeap[T]) Heapify(i int) {
	n := h.v.Len()
	for {
		least := i
		if l := array.Left(i); l < n && h.v.At(l) < h.v.At(least) {
			least = l
		}
		if r := array.Right(i); r < n && h.v.At(r) < h.v.At(least) {
			least = r
		}
		if least == i {
			return
		}
		h.v.Swap(i, least)
		i = least
	}
}

// Slice returns a copy of the heap in array order.
func (h *MinHeap[T]) Slice() []T {
	return h.v.Slice()
}

// Drain pops every element, returning them in ascending order.
func (h *MinHeap[T]) Drain() []T {
	out := make([]T, 0, h.v.Len())
	for !h.v.Empty() {
		out = append(out, h.Pop())
	}
	return out
}

// String returns the heap in array order, separated by spaces.
func (h *MinHeap[T]) String() string {
	return h.v.String()
}
