package exercise

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrBadInput = errors.New("bad input")

// scanner reads whitespace-separated tokens. Every read names what it
// expects, so errors say which value was missing or malformed.
type scanner struct {
	s *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &scanner{s: s}
}

func (s *scanner) word(what string) (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: missing %s", io.ErrUnexpectedEOF, what)
	}
	return s.s.Text(), nil
}

func (s *scanner) integer(what string) (int, error) {
	w, err := s.word(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrBadInput, what, w)
	}
	return n, nil
}

// atLeast reads an integer and checks that it is not below min.
func (s *scanner) atLeast(what string, min int) (int, error) {
	n, err := s.integer(what)
	if err != nil {
		return 0, err
	}
	if n < min {
		return 0, fmt.Errorf("%w: %s is %d, want at least %d", ErrBadInput, what, n, min)
	}
	return n, nil
}

// Counts come from the input, so slices sized by them start small and
// grow as values actually arrive.
const maxPrealloc = 1 << 16

func capHint(n int) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return n
}

// ints reads n integers.
func (s *scanner) ints(what string, n int) ([]int, error) {
	out := make([]int, 0, capHint(n))
	for i := 0; i < n; i++ {
		x, err := s.integer(fmt.Sprintf("%s %d", what, i+1))
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}
