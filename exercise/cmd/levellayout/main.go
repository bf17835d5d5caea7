package main

import (
	"flag"
	"io"

	"go.lepak.sg/sx/exercise"
	"go.lepak.sg/sx/tree/array"
)

func main() {
	maxSlots := flag.Int("max-slots", array.DefaultMaxSlots, "give up on trees that need more than `n` array slots")
	exercise.Main("levellayout", func(r io.Reader, w io.Writer) error {
		return exercise.LevelLayoutWith(*maxSlots)(r, w)
	})
}
