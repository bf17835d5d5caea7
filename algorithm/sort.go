// Package algorithm has the sorting routines used by the exercises.
package algorithm

import (
	"context"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Partitions at or below this length are not worth a goroutine.
const parallelCutoff = 2048

// partition rearranges s around its last element into three runs:
// s[:lt] is less than the pivot, s[lt:gt] equals it and s[gt:] is
// greater. The equal run is never partitioned again.
func partition[E constraints.Ordered](s []E) (lt, gt int) {
	p := s[len(s)-1]
	lt, gt = 0, len(s)
	for i := 0; i < gt; {
		switch {
		case s[i] < p:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > p:
			gt--
			s[gt], s[i] = s[i], s[gt]
		default:
			i++
		}
	}
	return lt, gt
}

// smallerFirst returns the unsorted sides of a partitioned s, the
// shorter one first.
func smallerFirst[E any](s []E, lt, gt int) (small, large []E) {
	lo, hi := s[:lt], s[gt:]
	if len(lo) > len(hi) {
		return hi, lo
	}
	return lo, hi
}

// QuickSort sorts s in place in ascending order, using the last element
// of each range as the pivot. It recurses only on
// the smaller side of each partition, so the stack depth is O(log n).
// It is not stable.
func QuickSort[S ~[]E, E constraints.Ordered](s S) {
	quickSort([]E(s))
}

func quickSort[E constraints.Ordered](s []E) {
	for len(s) > 1 {
		lt, gt := partition(s)
		small, large := smallerFirst(s, lt, gt)
		quickSort(small)
		s = large
	}
}

// QuickSortParallel sorts s in place like QuickSort, handing large
// partitions to other goroutines. At most workers extra goroutines sort
// at the same time; workers < 1 is treated as 1.
//
// Context cancellation: if ctx is canceled, QuickSortParallel stops
// partitioning, waits for running goroutines to exit and returns the
// context error. s is then only partially sorted.
func QuickSortParallel[S ~[]E, E constraints.Ordered](
	ctx context.Context, s S, workers int,
) error {
	if workers < 1 {
		workers = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	sema := semaphore.NewWeighted(int64(workers))

	var sort func(s []E) error
	sort = func(s []E) error {
		for len(s) > 1 {
			if err := ctx.Err(); err != nil {
				return err
			}

			if len(s) <= parallelCutoff {
				quickSort(s)
				return nil
			}

			lt, gt := partition(s)
			small, large := smallerFirst(s, lt, gt)

			// don't block waiting for a worker, just do it ourselves
			if sema.TryAcquire(1) {
				eg.Go(func() error {
					defer sema.Release(1)
					return sort(large)
				})
				s = small
				continue
			}

			if err := sort(small); err != nil {
				return err
			}
			s = large
		}
		return nil
	}

	eg.Go(func() error {
		return sort([]E(s))
	})

	return eg.Wait()
}

// CountDistinct returns the number of distinct values in s.
// s is not modified.
func CountDistinct[S ~[]E, E constraints.Ordered](s S) int {
	c := slices.Clone([]E(s))
	quickSort(c)
	return len(slices.Compact(c))
}

// CountDistinctParallel is CountDistinct with the sort done by
// QuickSortParallel.
func CountDistinctParallel[S ~[]E, E constraints.Ordered](
	ctx context.Context, s S, workers int,
) (int, error) {
	c := slices.Clone([]E(s))
	if err := QuickSortParallel(ctx, c, workers); err != nil {
		return 0, err
	}
	return len(slices.Compact(c)), nil
}
