package core

import (
	"io"
)

// Flusher is implemented by writers that stage bytes before handing them to their destination,
// e.g. *bufio.Writer.
type Flusher interface {
	Flush() error
}

type WriteFlushCloser interface {
	io.Writer
	Flusher
	io.Closer
}

// Flush flushes w if it stages its writes, and is a no-op otherwise.
func Flush(w io.Writer) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close closes v if it owns a resource, and is a no-op otherwise.
func Close(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ------------------------------------------------------------------------

func WithRCloser(r io.Reader, f func() error) io.ReadCloser {
	return &withRCloser{r, f}
}

type withRCloser struct {
	io.Reader
	f func() error
}

func (c *withRCloser) Close() error {
	return c.f()
}

// ------------------------------------------------------------------------

// WithWFlushCloser turns w into a WriteFlushCloser whose Flush and Close fall through to w
// when it supports them.
func WithWFlushCloser(w io.Writer) WriteFlushCloser {
	return &withWFlushCloser{w}
}

// NopWCloser is like WithWFlushCloser but never closes w, for writers that outlive the chain
// (os.Stdout).
func NopWCloser(w io.Writer) WriteFlushCloser {
	return &nopWCloser{w}
}

type withWFlushCloser struct {
	io.Writer
}

func (c *withWFlushCloser) Flush() error {
	return Flush(c.Writer)
}

func (c *withWFlushCloser) Close() error {
	if err := Flush(c.Writer); err != nil {
		_ = Close(c.Writer)
		return err
	}
	return Close(c.Writer)
}

type nopWCloser struct {
	io.Writer
}

func (c *nopWCloser) Flush() error {
	return Flush(c.Writer)
}

func (c *nopWCloser) Close() error {
	return Flush(c.Writer)
}
