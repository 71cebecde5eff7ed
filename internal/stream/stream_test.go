package stream

import (
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOpenFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("google.com\n"), 0644))

	src, err := OpenSource(path, time.Second)
	require.NoError(t, err)
	defer src.Close()

	data, err := io.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, "google.com\n", string(data))
	require.Equal(t, "file://"+path, core.DetermineReaderName(src))
}

func TestOpenMissingFileSource(t *testing.T) {
	_, err := OpenSource(filepath.Join(t.TempDir(), "missing.txt"), time.Second)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenURLSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gfwlist.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Z29vZ2xlLmNvbQo="))
	}))
	defer server.Close()

	url := strings.Replace(server.URL, "http://", "HTTP://", 1) + "/gfwlist.txt"
	src, err := OpenSource(url, time.Second)
	require.NoError(t, err)
	data, err := io.ReadAll(src)
	require.NoError(t, err)
	require.NoError(t, src.Close())
	require.Equal(t, "Z29vZ2xlLmNvbQo=", string(data))
	require.Equal(t, url, core.DetermineReaderName(src))

	_, err = OpenSource(server.URL+"/missing.txt", time.Second)
	require.ErrorIs(t, err, ErrHTTPStatus)
	require.ErrorContains(t, err, "404")
}

func TestOpenStdinSource(t *testing.T) {
	isTerminal := StdinIsTerminal
	defer func() { StdinIsTerminal = isTerminal }()

	StdinIsTerminal = func() bool { return true }
	_, err := OpenSource("-", time.Second)
	require.ErrorIs(t, err, ErrStdinTerminal)

	StdinIsTerminal = func() bool { return false }
	src, err := OpenSource("-", time.Second)
	require.NoError(t, err)
	require.Equal(t, "stdin", core.DetermineReaderName(src))
	require.NoError(t, src.Close())
}

func TestCreateFileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	dst, err := CreateDestination(path, 16)
	require.NoError(t, err)

	_, err = dst.Write([]byte(strings.Repeat("x", 10)))
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data, "writes are buffered until flushed")

	require.NoError(t, dst.Close())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("x", 10), string(data))
}

func TestCreateDestinationInMissingDirectory(t *testing.T) {
	_, err := CreateDestination(filepath.Join(t.TempDir(), "missing", "rules.json"), 0)
	require.Error(t, err)
}
