package window

import (
	"bufio"
	"io"
)

// StreamReader wraps a forward-only io.Reader (e.g. a network connection
// or pipe) as a Reader, matching the InputStream-backed constructors of
// reader/FileReader.java. Since the source cannot be re-read, every window
// ever produced is kept in an unbounded cache (rather than the bounded MRU
// policy FileReader uses): callers that only need a forward scan should
// prefer FileReader over a temp file, or accept the memory cost here.
type StreamReader struct {
	src       *bufio.Reader
	blockSize int
	windows   []*Window // ascending by Start; append-only
	length    int64     // -1 until EOF observed
	eof       bool
}

// NewStreamReader wraps r, reading ahead in blockSize-byte windows.
func NewStreamReader(r io.Reader, blockSize int) *StreamReader {
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}
	return &StreamReader{
		src:       bufio.NewReaderSize(r, blockSize),
		blockSize: blockSize,
		length:    -1,
	}
}

// Length blocks until the stream is fully drained, then returns its total
// size. Use Window/ReadByte for incremental consumption instead when
// possible.
func (r *StreamReader) Length() (int64, error) {
	for !r.eof {
		if _, err := r.fetchNext(); err != nil {
			return 0, err
		}
	}
	return r.length, nil
}

// ReadByte returns the byte at pos, reading ahead from the stream as
// needed.
func (r *StreamReader) ReadByte(pos int64) (byte, error) {
	w, err := r.Window(pos)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, ioErrorf("ReadByte", "position %d beyond end of stream", pos)
	}
	return w.Array[pos-w.Start], nil
}

// Window returns the window containing pos, reading ahead from the stream
// until either that window exists or EOF is reached.
func (r *StreamReader) Window(pos int64) (*Window, error) {
	if pos < 0 {
		return nil, nil
	}
	for {
		if w := r.find(pos); w != nil {
			return w, nil
		}
		if r.eof {
			return nil, nil
		}
		if _, err := r.fetchNext(); err != nil {
			return nil, err
		}
	}
}

// Close drops buffered windows. StreamReader owns no file descriptor
// beyond the wrapped io.Reader, whose lifecycle belongs to the caller.
func (r *StreamReader) Close() error {
	r.windows = nil
	return nil
}

func (r *StreamReader) find(pos int64) *Window {
	for _, w := range r.windows {
		if w.contains(pos) {
			return w
		}
	}
	return nil
}

func (r *StreamReader) fetchNext() (*Window, error) {
	start := int64(0)
	if n := len(r.windows); n > 0 {
		start = r.windows[n-1].end()
	}
	buf := make([]byte, r.blockSize)
	n, err := io.ReadFull(r.src, buf)
	switch {
	case err == io.EOF:
		r.eof = true
		r.length = start
		return nil, nil
	case err == io.ErrUnexpectedEOF:
		r.eof = true
		r.length = start + int64(n)
	case err != nil:
		return nil, ioErrorf("read", "%v", err)
	}
	w := &Window{Array: buf, Start: start, Length: n}
	r.windows = append(r.windows, w)
	return w, nil
}
