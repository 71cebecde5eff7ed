package core

import (
	"bytes"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"io"
	"math/rand"
	"sort"
	"sync"
)

type ChannelReader struct {
	buf  []mo.Result[[]byte]
	lock *sync.Mutex
	cond *sync.Cond
}

func NewChannelReader() *ChannelReader {
	mutex := sync.Mutex{}
	cond := sync.NewCond(&mutex)
	return &ChannelReader{lock: &mutex, cond: cond}
}

func (r *ChannelReader) Fail(err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.cond.Broadcast()

	r.buf = append(r.buf, mo.Err[[]byte](err))
}

func (r *ChannelReader) Write(p []byte) (n int, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.cond.Broadcast()

	r.buf = append(r.buf, mo.Ok(append([]byte{}, p...)))

	return len(p), nil
}

func (r *ChannelReader) WriteString(p string) {
	_, _ = r.Write([]byte(p))
}

func RandomlySlice(str string) []string {
	if len(str) == 0 {
		return []string{}
	} else if len(str) == 1 {
		return []string{str}
	}

	var indices []int
	for i := 0; i < len(str)-1; i += rand.Intn(len(str)-i-1) + 1 {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	ranges := lo.Zip2(indices, append(append([]int{}, indices...), len(str))[1:])
	slices := lo.Map(ranges, func(pair lo.Tuple2[int, int], _ int) string {
		return str[pair.A:pair.B]
	})
	return slices
}

func (r *ChannelReader) WriteStringInRandomChunks(str string) {
	for _, s := range RandomlySlice(str) {
		r.WriteString(s)
	}
}

// Read hands out the queued chunks one by one, a chunk is never merged with the next one.
func (r *ChannelReader) Read(p []byte) (n int, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for len(r.buf) == 0 {
		r.cond.Wait()
	}

	result := r.buf[0]
	buffer, e := result.Get()

	// clear the buffer only if it not []{EOF}
	if e != io.EOF {
		r.buf = r.buf[1:]
	}

	if e != nil {
		return 0, e
	}

	if len(buffer) > len(p) {
		rest := mo.Ok(buffer[len(p):])
		singleton := []mo.Result[[]byte]{rest}
		r.buf = append(singleton, r.buf...)
	}

	return copy(p, buffer), nil
}

func (r *ChannelReader) IsEmpty() bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.buf) == 0
}

// --------------------------------------------------------------------------------------------------------------------

// ChunkedWriter accepts a random number of bytes (at most MaxChunk) per Write without
// reporting an error, like a destination performing short writes.
type ChunkedWriter struct {
	MaxChunk int
	Writes   int
	Flushes  int
	Closed   bool
	buf      bytes.Buffer
}

func NewChunkedWriter(maxChunk int) *ChunkedWriter {
	return &ChunkedWriter{MaxChunk: maxChunk}
}

func (w *ChunkedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.Writes++
	n := len(p)
	if w.MaxChunk > 0 {
		n = rand.Intn(min(n, w.MaxChunk)) + 1
	}
	return w.buf.Write(p[:n])
}

func (w *ChunkedWriter) Flush() error {
	w.Flushes++
	return nil
}

func (w *ChunkedWriter) Close() error {
	w.Closed = true
	return nil
}

func (w *ChunkedWriter) String() string {
	return w.buf.String()
}
