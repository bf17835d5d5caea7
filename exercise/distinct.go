package exercise

import (
	"context"
	"fmt"
	"io"

	"go.lepak.sg/sx/algorithm"
)

// Distinct reads n, then n integers, and writes how many distinct values
// there are.
func Distinct(r io.Reader, w io.Writer) error {
	s, err := readCounted(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, algorithm.CountDistinct(s))
	return err
}

// DistinctParallel is Distinct with the sort spread over up to workers
// goroutines. It stops early if ctx is canceled.
func DistinctParallel(ctx context.Context, workers int) Func {
	return func(r io.Reader, w io.Writer) error {
		s, err := readCounted(r)
		if err != nil {
			return err
		}
		n, err := algorithm.CountDistinctParallel(ctx, s, workers)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, n)
		return err
	}
}

func readCounted(r io.Reader) ([]int, error) {
	sc := newScanner(r)
	n, err := sc.atLeast("count", 0)
	if err != nil {
		return nil, err
	}
	return sc.ints("value", n)
}
