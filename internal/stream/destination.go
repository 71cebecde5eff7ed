package stream

import (
	"bufio"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/sirupsen/logrus"
	"os"
)

// CreateDestination opens "-" (stdout) or creates a file for writing. The result is buffered,
// Close flushes it and closes the file, stdout stays open.
func CreateDestination(path string, buffer int) (core.WriteFlushCloser, error) {
	if buffer <= 0 {
		buffer = 4096
	}

	if path == "-" {
		logrus.Debug("writing destination to stdout")
		return core.NopWCloser(bufio.NewWriterSize(os.Stdout, buffer)), nil
	}

	logrus.Debugf("writing destination to file %s", path)
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &bufferedFile{Writer: bufio.NewWriterSize(file, buffer), file: file}, nil
}

type bufferedFile struct {
	*bufio.Writer
	file *os.File
}

func (f *bufferedFile) Close() error {
	if err := f.Writer.Flush(); err != nil {
		_ = f.file.Close()
		return err
	}
	return f.file.Close()
}

func (f *bufferedFile) StreamName() string {
	return "file://" + f.file.Name()
}
