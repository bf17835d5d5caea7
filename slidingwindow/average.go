// Package slidingwindow keeps statistics over the most recent
// observations of a stream.
package slidingwindow

import (
	"go.lepak.sg/sx/queue"
	"go.lepak.sg/sx/vector"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Average is a moving average over the last size observations.
// For integer T the mean is truncated toward zero, as integer division
// does.
//
// Average is not safe for concurrent use.
type Average[T Number] struct {
	window *queue.Queue[T]
	size   int
	sum    T
}

// NewAverage returns an empty moving average over size observations.
// It panics if size is less than 1.
func NewAverage[T Number](size int) *Average[T] {
	if size < 1 {
		panic("slidingwindow: invalid size")
	}
	return &Average[T]{
		window: queue.NewWith[T](vector.New[T](0)),
		size:   size,
	}
}

// Observe records x, evicting the oldest observation if the window is
// full, and returns the new mean.
func (a *Average[T]) Observe(x T) T {
	if a.window.Len() == a.size {
		a.sum -= a.window.Pop()
	}
	a.window.Push(x)
	a.sum += x
	return a.Mean()
}

// Mean returns the mean of the observations in the window.
// It panics if nothing has been observed.
func (a *Average[T]) Mean() T {
	if a.window.Empty() {
		panic("slidingwindow: Mean of empty Average")
	}
	return a.sum / T(a.window.Len())
}

// Len returns the number of observations in the window.
func (a *Average[T]) Len() int {
	return a.window.Len()
}

// Size returns the capacity of the window.
func (a *Average[T]) Size() int {
	return a.size
}
