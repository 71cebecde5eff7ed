package codec

import (
	"bytes"
	"encoding/base64"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"io"
	"strings"
	"testing"
)

const helloWorldBase64 = "SGVsbG8gd29ybGQh"

func TestBase64DecodeIgnoresWhitespace(t *testing.T) {
	whitespace := []byte(" \t\n\f\r")
	for i := 0; i < 1000; i++ {
		str := randomString(false, 200)
		text := base64.StdEncoding.EncodeToString([]byte(str))

		polluted := make([]byte, 0, 2*len(text))
		for j := 0; j < len(text); j++ {
			for rand.Intn(3) == 0 {
				polluted = append(polluted, whitespace[rand.Intn(len(whitespace))])
			}
			polluted = append(polluted, text[j])
		}
		polluted = append(polluted, '\n')

		src := core.NewChannelReader()
		src.WriteStringInRandomChunks(string(polluted))
		src.Fail(io.EOF)

		decoded, err := readInRandomChunks(Base64Reader(src))
		require.NoError(t, err)
		require.Equal(t, str, string(decoded), "polluted input %q", polluted)
	}
}

func TestBase64DecodeLineBreakAtReadBoundary(t *testing.T) {
	unsplit, err := io.ReadAll(Base64Reader(strings.NewReader(helloWorldBase64)))
	require.NoError(t, err)

	src := core.NewChannelReader()
	src.WriteString(helloWorldBase64[:7])
	src.WriteString("\n")
	src.WriteString(helloWorldBase64[7:])
	src.Fail(io.EOF)
	split, err := io.ReadAll(Base64Reader(src))
	require.NoError(t, err)

	require.Equal(t, helloWorld, string(unsplit))
	require.Equal(t, unsplit, split)
}

func TestBase64DecodeCorruptInput(t *testing.T) {
	_, err := io.ReadAll(Base64Reader(strings.NewReader("SGVs*G8=")))
	var corrupt base64.CorruptInputError
	require.ErrorAs(t, err, &corrupt)
}

func TestBase64EncodeFlushKeepsIncompleteGroup(t *testing.T) {
	dst := core.NewChunkedWriter(2)
	w := Base64Writer(dst)

	_, err := w.Write([]byte("Hell"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	require.Equal(t, "SGVs", dst.String())
	require.Equal(t, 1, dst.Flushes)

	_, err = w.Write([]byte("o world!"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, helloWorldBase64, dst.String())
	require.True(t, dst.Closed)
}

func TestBase64EncodePadding(t *testing.T) {
	encoded := &bytes.Buffer{}
	w := Base64Writer(encoded)
	_, err := w.Write([]byte("Hel"))
	require.NoError(t, err)
	_, err = w.Write([]byte("l"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "SGVsbA==", encoded.String())
}
