// Package exercise holds small programs that read a problem from an
// input stream, solve it with one of the containers in this module and
// write the answer. Each program is a Func; the binaries under cmd/
// hand one to Main.
//
// Input is a sequence of whitespace-separated tokens. Output lists are
// separated by single spaces and every output ends with a newline.
package exercise

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Func solves one exercise, reading from r and writing to w.
type Func func(r io.Reader, w io.Writer) error

// Main parses the command line and runs fn on standard input (or the
// file named by -in). If fn fails, Main logs at FATAL and exits with
// status 1. Programs may define their own flags before calling Main.
func Main(name string, fn Func) {
	in := flag.String("in", "", "read input from `file` instead of standard input")
	color := flag.Bool("color", false, "colour log output")
	verbose := flag.Bool("v", false, "log timing information")
	flag.Parse()

	SetColorPrint(*color)

	if err := run(name, fn, *in, os.Stdin, os.Stdout, *verbose); err != nil {
		LogFatal("%s: %v", name, err)
	}
}

func run(name string, fn Func, path string, stdin io.Reader, stdout io.Writer, verbose bool) error {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	start := time.Now()
	bw := bufio.NewWriter(stdout)

	err := fn(r, bw)
	// whatever was written before a failure is still useful
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("writing output: %w", ferr)
	}
	if err != nil {
		return err
	}

	if verbose {
		LogInfo("%s: done in %v", name, time.Since(start))
	}
	return nil
}
