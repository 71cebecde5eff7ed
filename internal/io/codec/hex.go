package codec

import (
	"errors"
	"fmt"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"io"
)

// ErrIncompleteHex is returned when a hex stream ends in the middle of a digit pair.
var ErrIncompleteHex = errors.New("incomplete hex string")

// InvalidHexCharError reports a byte outside [0-9a-fA-F] in a hex stream.
type InvalidHexCharError byte

func (e InvalidHexCharError) Error() string {
	return fmt.Sprintf("unexpected char from hex string: %#U", rune(e))
}

const hextable = "0123456789abcdef"

// ----------------------------------------------------------------------------------------------------------------

type hexDecoderReader struct {
	src io.Reader
	in  window
	eof bool
	err error
}

// HexReader decodes the hex digits pulled from src, upper and lower case alike.
// A digit pair split across two reads of src is carried over, a missing last digit
// yields ErrIncompleteHex instead of io.EOF.
func HexReader(src io.Reader) io.ReadCloser {
	return &hexDecoderReader{src: src}
}

func (r *hexDecoderReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.err != nil {
		return 0, r.err
	}

	for empty := 0; empty < maxConsecutiveEmptyReads; {
		var readErr error
		if !r.eof && !r.in.isFull() {
			n, err := r.src.Read(r.in.spare())
			r.in.filled += n
			if err == io.EOF {
				r.eof = true
			} else if err != nil {
				readErr = err
			}
			if n == 0 && err == nil {
				empty++
			} else {
				empty = 0
			}
		}

		count, err := r.decode(p)
		if err != nil {
			r.err = err
			return count, err
		}
		r.in.compact()
		if count > 0 || readErr != nil {
			return count, readErr
		}

		if r.eof {
			if r.in.filled == 0 {
				return 0, io.EOF
			}
			if _, ok := fromHexChar(r.in.buf[0]); !ok {
				r.err = InvalidHexCharError(r.in.buf[0])
			} else {
				r.err = ErrIncompleteHex
			}
			return 0, r.err
		}
	}
	return 0, io.ErrNoProgress
}

// decode converts complete digit pairs of the window into p, a batch never exceeds the window
// capacity.
func (r *hexDecoderReader) decode(p []byte) (int, error) {
	count := 0
	for count < len(p) && count < windowCapacity && r.in.filled-r.in.offset >= 2 {
		hi, ok := fromHexChar(r.in.buf[r.in.offset])
		if !ok {
			return count, InvalidHexCharError(r.in.buf[r.in.offset])
		}
		lo, ok := fromHexChar(r.in.buf[r.in.offset+1])
		if !ok {
			return count, InvalidHexCharError(r.in.buf[r.in.offset+1])
		}
		p[count] = hi<<4 | lo
		r.in.offset += 2
		count++
	}
	return count, nil
}

func (r *hexDecoderReader) Close() error {
	return core.Close(r.src)
}

func (r *hexDecoderReader) Underlying() io.Reader {
	return r.src
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ----------------------------------------------------------------------------------------------------------------

type hexEncoderWriter struct {
	dst io.Writer
	out window
}

// HexWriter writes the lowercase hex encoding of its input to dst. Encoded text is staged in a
// fixed window; whatever dst does not accept stays staged until the next Write or Flush.
func HexWriter(dst io.Writer) core.WriteFlushCloser {
	return &hexEncoderWriter{dst: dst}
}

func (w *hexEncoderWriter) Write(p []byte) (int, error) {
	consumed := 0
	for consumed < len(p) {
		n, written, err := w.encodeOnce(p[consumed:])
		consumed += n
		if err != nil {
			return consumed, err
		}
		if n == 0 && written == 0 {
			return consumed, io.ErrShortWrite
		}
	}
	return consumed, nil
}

// encodeOnce stages the encoding of as many bytes of p as the window has room for, then hands
// the staged text to dst with a single Write. It reports the bytes of p consumed and the staged
// bytes dst accepted.
func (w *hexEncoderWriter) encodeOnce(p []byte) (consumed int, written int, err error) {
	for consumed < len(p) && len(w.out.buf)-w.out.filled >= 2 {
		b := p[consumed]
		w.out.buf[w.out.filled] = hextable[b>>4]
		w.out.buf[w.out.filled+1] = hextable[b&0x0f]
		w.out.filled += 2
		consumed++
	}

	written, err = w.dst.Write(w.out.pending())
	w.out.offset += written
	if w.out.isDrained() {
		w.out.reset()
	}
	return consumed, written, err
}

// Flush hands every staged byte to dst, then flushes dst. On failure the window keeps the bytes
// dst has not accepted, so calling Flush again resumes where it stopped.
func (w *hexEncoderWriter) Flush() error {
	for !w.out.isDrained() {
		n, err := w.dst.Write(w.out.pending())
		w.out.offset += n
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		if !w.out.isDrained() {
			if err := core.Flush(w.dst); err != nil {
				return err
			}
		}
	}
	w.out.reset()

	return core.Flush(w.dst)
}

func (w *hexEncoderWriter) Close() error {
	if err := w.Flush(); err != nil {
		_ = core.Close(w.dst)
		return err
	}
	return core.Close(w.dst)
}

func (w *hexEncoderWriter) Underlying() io.Writer {
	return w.dst
}
