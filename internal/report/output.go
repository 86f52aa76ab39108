package report

import (
	"fmt"
	"io"
	"os"
)

// Output is a handle on a report file that may still be being written.
type Output struct {
	path string
	done chan struct{}
	err  error
}

func (o *Output) Path() string { return o.path }

// Done is closed once the file is flushed and closed.
func (o *Output) Done() <-chan struct{} { return o.done }

// Wait blocks until the file is complete and returns the write error, if any.
func (o *Output) Wait() error {
	<-o.done
	return o.err
}

func completedOutput(path string) *Output {
	o := &Output{path: path, done: make(chan struct{})}
	close(o.done)
	return o
}

// writeFileAsync creates path now and hands the open file to write in a
// background goroutine. Errors from creating the file are returned directly.
func writeFileAsync(path string, write func(io.Writer) error) (*Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	o := &Output{path: path, done: make(chan struct{})}
	go func() {
		defer close(o.done)
		werr := write(f)
		cerr := f.Close()
		switch {
		case werr != nil:
			o.err = fmt.Errorf("writing %s: %w", path, werr)
		case cerr != nil:
			o.err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return o, nil
}
