package sequence

import "github.com/coregx/byteseek/window"

// fixedReader is a minimal in-memory window.Reader that always splits its
// backing array into fixed-size windows, used to exercise window-boundary
// matching (spec.md §4.2, S6) without depending on window.FileReader.
type fixedReader struct {
	data      []byte
	blockSize int
}

func newFixedReader(data []byte, blockSize int) *fixedReader {
	return &fixedReader{data: data, blockSize: blockSize}
}

func (r *fixedReader) Length() (int64, error) { return int64(len(r.data)), nil }

func (r *fixedReader) ReadByte(pos int64) (byte, error) {
	return r.data[pos], nil
}

func (r *fixedReader) Window(pos int64) (*window.Window, error) {
	if pos < 0 || pos >= int64(len(r.data)) {
		return nil, nil
	}
	start := (pos / int64(r.blockSize)) * int64(r.blockSize)
	end := start + int64(r.blockSize)
	if end > int64(len(r.data)) {
		end = int64(len(r.data))
	}
	return &window.Window{Array: r.data[start:end], Start: start, Length: int(end - start)}, nil
}

func (r *fixedReader) Close() error { return nil }
