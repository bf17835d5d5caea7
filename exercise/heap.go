package exercise

import (
	"fmt"
	"io"

	"go.lepak.sg/sx/heap"
	"go.lepak.sg/sx/vector"
)

// MinHeap reads n, then n integers, pushing each onto a min-heap and
// writing the heap's array after every push. It finishes with a line
// holding the values popped off the heap, smallest first.
func MinHeap(r io.Reader, w io.Writer) error {
	s, err := readCounted(r)
	if err != nil {
		return err
	}

	var h heap.MinHeap[int]
	for _, x := range s {
		h.Push(x)
		if _, err := fmt.Fprintln(w, &h); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, vector.Of(h.Drain()...))
	return err
}
