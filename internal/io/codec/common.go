package codec

import (
	"github.com/nimatrueway/foxyrules/internal/config"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/sirupsen/logrus"
	"io"
)

// Decode wraps src with the decoder of the given encoding. Closing the result closes src.
func Decode(src io.Reader, encoding config.Encoding) io.ReadCloser {
	// fully log byte transfers if trace-level logging is enabled
	trace := logrus.IsLevelEnabled(logrus.TraceLevel)
	if trace {
		src = &core.ReaderLogInterceptor{Reader: src, LogLevel: logrus.TraceLevel, Prefix: encoding.String() + ": "}
	}

	var r io.ReadCloser
	switch encoding {
	case config.Raw:
		return core.WithRCloser(src, func() error { return core.Close(src) })
	case config.Hex:
		r = HexReader(src)
	case config.Base64:
		r = Base64Reader(src)
	default:
		panic("invalid encoding")
	}

	if trace {
		return &core.ReaderLogInterceptor{Reader: r, LogLevel: logrus.TraceLevel, Prefix: "decoded: "}
	}
	return r
}

// Encode wraps dst with the encoder of the given encoding. Closing the result flushes all
// pending output and closes dst.
func Encode(dst io.Writer, encoding config.Encoding) core.WriteFlushCloser {
	trace := logrus.IsLevelEnabled(logrus.TraceLevel)
	if trace {
		dst = &core.WriterLogInterceptor{Writer: dst, LogLevel: logrus.TraceLevel, Prefix: encoding.String() + ": "}
	}

	var w core.WriteFlushCloser
	switch encoding {
	case config.Raw:
		w = core.WithWFlushCloser(dst)
	case config.Hex:
		w = HexWriter(dst)
	case config.Base64:
		w = Base64Writer(dst)
	default:
		panic("invalid encoding")
	}

	if trace && encoding != config.Raw {
		return &core.WriterLogInterceptor{Writer: w, LogLevel: logrus.TraceLevel, Prefix: "unencoded: "}
	}
	return w
}
