package exercise

import (
	"fmt"
	"io"

	"go.lepak.sg/sx/slidingwindow"
)

// MovingAverage reads the window size n, the count m, then m integers.
// After each integer it writes the mean of the last n integers,
// truncated toward zero.
func MovingAverage(r io.Reader, w io.Writer) error {
	sc := newScanner(r)
	n, err := sc.atLeast("window size", 1)
	if err != nil {
		return err
	}
	m, err := sc.atLeast("count", 0)
	if err != nil {
		return err
	}

	avg := slidingwindow.NewAverage[int](n)
	for i := 0; i < m; i++ {
		x, err := sc.integer(fmt.Sprintf("value %d", i+1))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, avg.Observe(x)); err != nil {
			return err
		}
	}
	return nil
}
