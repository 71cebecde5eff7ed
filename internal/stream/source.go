package stream

import (
	"errors"
	"fmt"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	ErrStdinTerminal = errors.New("no data on stdin: use a pipe or redirect when using '-'")
	ErrHTTPStatus    = errors.New("unexpected http status")
)

// StdinIsTerminal is swapped in tests.
var StdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// OpenSource opens "-" (stdin), an http(s) url or a file for reading.
func OpenSource(path string, timeout time.Duration) (io.ReadCloser, error) {
	if path == "-" {
		if StdinIsTerminal() {
			return nil, ErrStdinTerminal
		}
		logrus.Debug("reading source from stdin")
		// stdin outlives the conversion, it is never closed
		return core.WithRCloser(os.Stdin, func() error { return nil }), nil
	}

	lowercase := strings.ToLower(path)
	if strings.HasPrefix(lowercase, "http://") || strings.HasPrefix(lowercase, "https://") {
		return openURL(path, timeout)
	}

	logrus.Debugf("reading source from file %s", path)
	return os.Open(path)
}

type httpBody struct {
	io.ReadCloser
	url string
}

func (b *httpBody) StreamName() string {
	return b.url
}

func openURL(url string, timeout time.Duration) (io.ReadCloser, error) {
	logrus.Debugf("fetching source from %s", url)
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %s", ErrHTTPStatus, url, resp.Status)
	}
	return &httpBody{ReadCloser: resp.Body, url: url}, nil
}
