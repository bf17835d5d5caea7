package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"go.lepak.sg/sx/exercise"
)

func main() {
	workers := flag.Int("workers", 0, "sort with up to `n` extra goroutines (0 sorts in one goroutine)")
	exercise.Main("distinct", func(r io.Reader, w io.Writer) error {
		if *workers < 0 {
			exercise.LogWarn("distinct: ignoring negative -workers %d", *workers)
		}
		if *workers <= 0 {
			return exercise.Distinct(r, w)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return exercise.DistinctParallel(ctx, *workers)(r, w)
	})
}
