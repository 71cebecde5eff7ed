package core

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"os"
)

// ReaderWrapper is implemented by decorators, it lets DetermineReaderName name the
// innermost stream.
type ReaderWrapper interface {
	Underlying() io.Reader
}

type WriterWrapper interface {
	Underlying() io.Writer
}

// Named is implemented by streams that know a better name than their type, e.g. an http body.
type Named interface {
	StreamName() string
}

type WriterLogInterceptor struct {
	io.Writer
	LogLevel logrus.Level
	Prefix   string
}

func NewWriterLogInterceptor(w io.Writer) *WriterLogInterceptor {
	return &WriterLogInterceptor{Writer: w, LogLevel: logrus.TraceLevel}
}

func (wi *WriterLogInterceptor) Write(p []byte) (n int, err error) {
	write, err := wi.Writer.Write(p)

	writerName := DetermineWriterName(wi.Writer)
	if write > 0 {
		logrus.StandardLogger().Logf(wi.LogLevel, "%swrote %d bytes to \"%s\": %#v", wi.Prefix, write, writerName, string(p[:write]))
	}
	if err != nil {
		logrus.StandardLogger().Logf(wi.LogLevel, "%swrite error to \"%s\": %s", wi.Prefix, writerName, err.Error())
	}

	return write, err
}

func (wi *WriterLogInterceptor) Flush() error {
	return Flush(wi.Writer)
}

func (wi *WriterLogInterceptor) Close() error {
	return Close(wi.Writer)
}

func (wi *WriterLogInterceptor) Underlying() io.Writer {
	return wi.Writer
}

// --------------------------------------------------------------------------------------------------------------------

type ReaderLogInterceptor struct {
	io.Reader
	LogLevel logrus.Level
	Prefix   string
}

func NewReaderLogInterceptor(r io.Reader) *ReaderLogInterceptor {
	return &ReaderLogInterceptor{Reader: r, LogLevel: logrus.TraceLevel}
}

func (ri *ReaderLogInterceptor) Read(p []byte) (n int, err error) {
	read, err := ri.Reader.Read(p)

	readerName := DetermineReaderName(ri.Reader)
	if read > 0 {
		logrus.StandardLogger().Logf(ri.LogLevel, "%sread %d bytes from \"%s\": %#v", ri.Prefix, read, readerName, string(p[:read]))
	}
	if err != nil && err != io.EOF {
		logrus.StandardLogger().Logf(ri.LogLevel, "%sread error from \"%s\": %s", ri.Prefix, readerName, err.Error())
	}

	return read, err
}

func (ri *ReaderLogInterceptor) Close() error {
	return Close(ri.Reader)
}

func (ri *ReaderLogInterceptor) Underlying() io.Reader {
	return ri.Reader
}

func DetermineWriterName(writer io.Writer) string {
	if n, ok := writer.(Named); ok {
		return n.StreamName()
	} else if w, ok := writer.(WriterWrapper); ok {
		return DetermineWriterName(w.Underlying())
	} else if w, ok := writer.(*withWFlushCloser); ok {
		return DetermineWriterName(w.Writer)
	} else if w, ok := writer.(*nopWCloser); ok {
		return DetermineWriterName(w.Writer)
	} else if writer == os.Stdout {
		return "stdout"
	} else if writer == os.Stderr {
		return "stderr"
	} else if file, ok := writer.(*os.File); ok {
		return fmt.Sprintf("file://%s", file.Name())
	} else {
		return fmt.Sprintf("%T", writer)
	}
}

func DetermineReaderName(reader io.Reader) string {
	if n, ok := reader.(Named); ok {
		return n.StreamName()
	} else if r, ok := reader.(ReaderWrapper); ok {
		return DetermineReaderName(r.Underlying())
	} else if r, ok := reader.(*withRCloser); ok {
		return DetermineReaderName(r.Reader)
	} else if reader == os.Stdin {
		return "stdin"
	} else if file, ok := reader.(*os.File); ok {
		return fmt.Sprintf("file://%s", file.Name())
	} else {
		return fmt.Sprintf("%T", reader)
	}
}
