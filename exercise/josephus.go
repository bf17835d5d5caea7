package exercise

import (
	"fmt"
	"io"

	"go.lepak.sg/sx/list"
)

// Josephus reads n, m and k. People numbered 1 to n stand in a circle;
// counting starts from person 1 and every m-th person is removed, the
// count restarting from the next person. Josephus writes the number of
// the k-th person to be removed.
func Josephus(r io.Reader, w io.Writer) error {
	sc := newScanner(r)
	n, err := sc.atLeast("n", 1)
	if err != nil {
		return err
	}
	m, err := sc.atLeast("m", 1)
	if err != nil {
		return err
	}
	k, err := sc.atLeast("k", 1)
	if err != nil {
		return err
	}
	if k > n {
		return fmt.Errorf("%w: k is %d, only %d people", ErrBadInput, k, n)
	}

	_, err = fmt.Fprintln(w, josephus(n, m, k))
	return err
}

func josephus(n, m, k int) int {
	circle := list.NewCircular[int]()
	for i := 1; i <= n; i++ {
		circle.PushBack(i)
	}

	e := circle.Front()
	for i := 1; ; i++ {
		// a full lap around the circle lands on the same person
		for j := (m - 1) % circle.Len(); j > 0; j-- {
			e = e.Next()
		}
		if i == k {
			return e.Value
		}
		e = circle.Remove(e)
	}
}
