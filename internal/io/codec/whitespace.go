package codec

import (
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"io"
)

// maxConsecutiveEmptyReads bounds how many (0, nil) reads from a source are tolerated before
// giving up with io.ErrNoProgress, like bufio does.
const maxConsecutiveEmptyReads = 100

type whitespaceFilterReader struct {
	io.Reader
}

// NewWhitespaceFilterReader drops ASCII whitespace (space, \t, \n, \f, \r) from src.
//
// A chunk that is whitespace only is never reported as a zero-length read, the next chunk is
// pulled instead. Note that a source producing whitespace forever keeps Read busy forever.
func NewWhitespaceFilterReader(src io.Reader) io.ReadCloser {
	return &whitespaceFilterReader{src}
}

func (r *whitespaceFilterReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for empty := 0; empty < maxConsecutiveEmptyReads; {
		n, err := r.Reader.Read(p)
		kept := 0
		for _, c := range p[:n] {
			if !isASCIIWhitespace(c) {
				p[kept] = c
				kept++
			}
		}
		if kept > 0 || err != nil {
			return kept, err
		}
		if n == 0 {
			empty++
		} else {
			empty = 0
		}
	}
	return 0, io.ErrNoProgress
}

func (r *whitespaceFilterReader) Close() error {
	return core.Close(r.Reader)
}

func (r *whitespaceFilterReader) Underlying() io.Reader {
	return r.Reader
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
