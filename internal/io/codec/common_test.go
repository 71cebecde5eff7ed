package codec

import (
	"bytes"
	"github.com/nimatrueway/foxyrules/internal/config"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

var helloWorldEncoded = map[config.Encoding]string{
	config.Raw:    helloWorld,
	config.Hex:    helloWorldHex,
	config.Base64: helloWorldBase64,
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestDecode(t *testing.T) {
	for encoding, encoded := range helloWorldEncoded {
		src := &closeTracker{Reader: strings.NewReader(encoded)}
		r := Decode(src, encoding)

		decoded, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, helloWorld, string(decoded), "encoding %s", encoding)

		require.NoError(t, r.Close())
		require.True(t, src.closed, "encoding %s", encoding)
	}
}

func TestEncode(t *testing.T) {
	for encoding, encoded := range helloWorldEncoded {
		dst := core.NewChunkedWriter(0)
		w := Encode(dst, encoding)

		_, err := w.Write([]byte(helloWorld))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.Equal(t, encoded, dst.String(), "encoding %s", encoding)
		require.True(t, dst.Closed, "encoding %s", encoding)
		require.Positive(t, dst.Flushes, "encoding %s", encoding)
	}
}

func TestCodecWithTraceLogging(t *testing.T) {
	level, out := logrus.GetLevel(), logrus.StandardLogger().Out
	defer func() {
		logrus.SetLevel(level)
		logrus.SetOutput(out)
	}()
	logs := &bytes.Buffer{}
	logrus.SetOutput(logs)
	logrus.SetLevel(logrus.TraceLevel)

	for encoding, encoded := range helloWorldEncoded {
		dst := &bytes.Buffer{}
		w := Encode(dst, encoding)
		_, err := w.Write([]byte(helloWorld))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.Equal(t, encoded, dst.String())

		decoded, err := io.ReadAll(Decode(strings.NewReader(encoded), encoding))
		require.NoError(t, err)
		require.Equal(t, helloWorld, string(decoded))
	}
	require.Contains(t, logs.String(), "hex: wrote 24 bytes to")
	require.Contains(t, logs.String(), "decoded: read 12 bytes from")
}

func TestUnknownEncoding(t *testing.T) {
	require.Panics(t, func() { Decode(strings.NewReader(""), "rot13") })
	require.Panics(t, func() { Encode(&bytes.Buffer{}, "rot13") })
}
