package codec

const windowCapacity = 4096

// window is a fixed-capacity staging area. buf[offset:filled] holds the bytes that are not
// consumed (decoding) or not flushed (encoding) yet; 0 <= offset <= filled <= windowCapacity.
type window struct {
	buf    [windowCapacity]byte
	offset int
	filled int
}

func (w *window) pending() []byte {
	return w.buf[w.offset:w.filled]
}

func (w *window) spare() []byte {
	return w.buf[w.filled:]
}

func (w *window) isFull() bool {
	return w.filled == len(w.buf)
}

func (w *window) isDrained() bool {
	return w.offset == w.filled
}

func (w *window) reset() {
	w.offset = 0
	w.filled = 0
}

// compact resets a drained window, or moves a single leftover byte to the front.
// Larger leftovers stay in place.
func (w *window) compact() {
	switch w.filled - w.offset {
	case 0:
		w.reset()
	case 1:
		w.buf[0] = w.buf[w.offset]
		w.offset = 0
		w.filled = 1
	}
}
