package codec

import (
	"encoding/base64"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"io"
)

type base64DecoderReader struct {
	io.Reader
	src io.Reader
}

// Base64Reader decodes standard padded base64 pulled from src. Line breaks and other ASCII
// whitespace wrapping the payload are dropped before decoding.
func Base64Reader(src io.Reader) io.ReadCloser {
	return &base64DecoderReader{
		Reader: base64.NewDecoder(base64.StdEncoding, NewWhitespaceFilterReader(src)),
		src:    src,
	}
}

func (r *base64DecoderReader) Close() error {
	return core.Close(r.src)
}

func (r *base64DecoderReader) Underlying() io.Reader {
	return r.src
}

// ----------------------------------------------------------------------------------------------------------------

type base64EncoderWriter struct {
	io.WriteCloser
	dst io.Writer
}

// Base64Writer writes the standard padded base64 encoding of its input to dst, without line
// breaks. Flush cannot emit an incomplete 3-byte group, only Close writes the final padded one.
func Base64Writer(dst io.Writer) core.WriteFlushCloser {
	return &base64EncoderWriter{
		WriteCloser: base64.NewEncoder(base64.StdEncoding, fullWriter{dst}),
		dst:         dst,
	}
}

func (w *base64EncoderWriter) Flush() error {
	return core.Flush(w.dst)
}

func (w *base64EncoderWriter) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		_ = core.Close(w.dst)
		return err
	}
	if err := core.Flush(w.dst); err != nil {
		_ = core.Close(w.dst)
		return err
	}
	return core.Close(w.dst)
}

func (w *base64EncoderWriter) Underlying() io.Writer {
	return w.dst
}

// fullWriter repeats short writes until dst took all of p, base64.NewEncoder drops whatever an
// underlying Write reports as unwritten.
type fullWriter struct {
	io.Writer
}

func (w fullWriter) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.Writer.Write(p[written:])
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}
