// Package vector provides a dynamic array with an explicit capacity
// policy: appending to a full Vector doubles its capacity.
package vector

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Vector is a growable array. The zero Vector is empty with no capacity
// and is ready for use. Vector is not safe for concurrent use.
//
// Invariants:
//   - 0 <= size <= len(data)
//   - len(data) is the capacity, and only changes in grow
type Vector[T any] struct {
	data []T
	size int
}

// New returns a Vector holding size zero values, with capacity equal to
// size.
func New[T any](size int) *Vector[T] {
	if size < 0 {
		panic("vector: negative size")
	}
	return &Vector[T]{
		data: make([]T, size),
		size: size,
	}
}

// Of returns a Vector holding a copy of vs.
func Of[T any](vs ...T) *Vector[T] {
	v := New[T](len(vs))
	copy(v.data, vs)
	return v
}

// Len returns the number of elements in the Vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the Vector can hold before it has to
// grow.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty returns true if the Vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

func (v *Vector[T]) check(i int, op string) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: %s index %d out of range [0, %d)", op, i, v.size))
	}
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	v.check(i, "At")
	return v.data[i]
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, x T) {
	v.check(i, "Set")
	v.data[i] = x
}

// Swap exchanges the elements at indices i and j.
func (v *Vector[T]) Swap(i, j int) {
	v.check(i, "Swap")
	v.check(j, "Swap")
	v.data[i], v.data[j] = v.data[j], v.data[i]
}

// Front returns the first element.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("vector: Front on empty Vector")
	}
	return v.data[0]
}

// Back returns the last element.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("vector: Back on empty Vector")
	}
	return v.data[v.size-1]
}

// grow makes room for at least target elements.
// With target == 0 the capacity is doubled (or set to 1 if it was 0).
// Otherwise the capacity is doubled until it reaches target, or set to
// exactly target if it was 0.
func (v *Vector[T]) grow(target int) {
	c := len(v.data)
	switch {
	case target == 0 && c == 0:
		c = 1
	case target == 0:
		c *= 2
	case c == 0:
		c = target
	default:
		for c < target {
			c *= 2
		}
	}

	if c == len(v.data) {
		return
	}

	data := make([]T, c)
	copy(data, v.data[:v.size])
	v.data = data
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) {
	if v.size == len(v.data) {
		v.grow(0)
	}
	v.data[v.size] = x
	v.size++
}

// Insert inserts x before index pos and returns pos, the index x now
// occupies. pos may equal Len, in which case Insert behaves like
// PushBack.
func (v *Vector[T]) Insert(pos int, x T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: Insert position %d out of range [0, %d]", pos, v.size))
	}

	if v.size == len(v.data) {
		v.grow(0)
	}
	copy(v.data[pos+1:v.size+1], v.data[pos:v.size])
	v.data[pos] = x
	v.size++

	return pos
}

// InsertSlice inserts xs before index pos and returns pos, the index the
// first of xs now occupies.
func (v *Vector[T]) InsertSlice(pos int, xs ...T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: InsertSlice position %d out of range [0, %d]", pos, v.size))
	}

	n := len(xs)
	if v.size+n > len(v.data) {
		v.grow(v.size + n)
	}
	copy(v.data[pos+n:v.size+n], v.data[pos:v.size])
	copy(v.data[pos:pos+n], xs)
	v.size += n

	return pos
}

// Erase removes the element at index pos and returns pos, which is now
// the index of the element that followed the erased one (or Len, if the
// last element was erased).
func (v *Vector[T]) Erase(pos int) int {
	v.check(pos, "Erase")

	copy(v.data[pos:v.size-1], v.data[pos+1:v.size])
	v.size--

	var zero T
	v.data[v.size] = zero

	return pos
}

// PopFront removes and returns the first element.
// This shifts every remaining element, so it takes O(Len) time.
func (v *Vector[T]) PopFront() T {
	x := v.Front()
	v.Erase(0)
	return x
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() T {
	x := v.Back()
	v.Erase(v.size - 1)
	return x
}

// Clone returns a copy of v. The capacity of the copy equals v.Len.
func (v *Vector[T]) Clone() *Vector[T] {
	return Of(v.data[:v.size]...)
}

// Concat returns a new Vector holding the elements of v followed by the
// elements of w.
func (v *Vector[T]) Concat(w *Vector[T]) *Vector[T] {
	out := v.Clone()
	out.InsertSlice(out.size, w.data[:w.size]...)
	return out
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	return slices.Clone(v.data[:v.size])
}

// Iterator returns an iterator over the elements from front to back.
func (v *Vector[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{v: v, i: -1}
}

// String returns the elements separated by single spaces.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprint(v.data[i]))
	}
	return sb.String()
}

// Iterator is an iterator over a Vector.
// Next must be called before every call to Item.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

func (i *Iterator[T]) Next() bool {
	if i.i >= i.v.size {
		return false
	}
	i.i++
	return i.i < i.v.size
}

func (i *Iterator[T]) Item() T {
	return i.v.data[i.i]
}
