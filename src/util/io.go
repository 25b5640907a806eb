package util

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"fctfmt/src/engine"
	"fctfmt/src/printf"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Writer lets a batch worker render one job and hand the result off
// to the single goroutine that owns the output file, instead of every
// worker racing to write to it directly.
type Writer struct {
	c chan string
}

// ---------------------
// ----- Constants -----
// ---------------------

var wc chan string // Write channel used for receiving rendered jobs from worker goroutines.
var cc chan error  // Close channel used by the main thread to signal the listener to stop.

// ---------------------
// ----- Functions -----
// ---------------------

// Render formats job (a "format|arg,arg,..." line) and sends the
// result to the listener started by ListenWrite. Each worker owns its
// own ArgCursor, so concurrent Render calls on different Writers never
// share engine state beyond the specifier table's read lock.
func (w *Writer) Render(job string) (uint, error) {
	format, args, err := parseJob(job)
	if err != nil {
		return 0, err
	}
	s := printf.Sprintf(format, args...)
	w.c <- s
	return uint(len(s)), nil
}

// NewWriter returns a new Writer for use by a batch worker goroutine.
// Must not be called before the main goroutine has called ListenWrite.
func NewWriter() Writer {
	return Writer{c: wc}
}

// parseJob splits a "format|arg,arg,..." batch line into a format
// string and a slice of engine.Arg, guessing each argument's kind: an
// integer literal becomes Int, any other literal strconv.ParseFloat
// accepts (including "inf" and "nan") becomes Float, anything else is
// passed through as Str.
func parseJob(job string) (string, []engine.Arg, error) {
	parts := strings.SplitN(job, "|", 2)
	format := parts[0]
	if len(parts) == 1 || parts[1] == "" {
		return format, nil, nil
	}

	fields := strings.Split(parts[1], ",")
	args := make([]engine.Arg, len(fields))
	for i, f := range fields {
		args[i] = guessArg(f)
	}
	return format, args, nil
}

func guessArg(s string) engine.Arg {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return engine.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return engine.Float(f)
	}
	return engine.Str(s)
}

// ReadSource reads batch job lines from a file or stdin. If path is
// non-empty the file is read in full; otherwise the function waits a
// short period for input on stdin and returns an error if none
// arrives.
func ReadSource(path string) (string, error) {
	if len(path) > 0 {
		b, err := os.ReadFile(path)
		return string(b), err
	}

	c := make(chan string)
	cerr := make(chan error)

	go func(c chan string, cerr chan error) {
		defer close(c)
		defer close(cerr)
		reader := bufio.NewReader(os.Stdin)
		text, err := reader.ReadString(0)
		if err == nil || (err == io.EOF && text != "") {
			c <- text
		} else {
			cerr <- err
		}
	}(c, cerr)

	select {
	case <-time.After(500 * time.Millisecond):
		return "", errors.New("expected input from stdin, got none")
	case s := <-c:
		return s, nil
	}
}

// ListenWrite starts the single goroutine that owns the output
// destination: it drains rendered jobs from t workers' Writers and
// appends each one, in arrival order, to f (or stdout if f is nil).
// Call Close to stop it.
func ListenWrite(t int, f *os.File) {
	wc = make(chan string, t)
	cc = make(chan error, 1) // buffered, to catch Close before the listener starts looping

	var w *bufio.Writer
	if f != nil {
		w = bufio.NewWriter(f)
	} else {
		w = bufio.NewWriter(os.Stdout)
	}

	go func(wc chan string, cc chan error) {
		defer close(wc)
		defer close(cc)
		for {
			select {
			case s := <-wc:
				_, _ = w.WriteString(s)
				_, _ = w.WriteString("\n")
				_ = w.Flush()
			case <-cc:
				return
			}
		}
	}(wc, cc)
}

// Close sends the termination signal to the writer listener started
// by ListenWrite.
func Close() {
	cc <- nil
}
