package window

import (
	"os"
)

const defaultBlockSize = 4096
const defaultMRUCapacity = 8

// FileReader reads a file into fixed-size, cached Windows, matching
// reader/FileReader.java / reader/RandomAccessFileReader.java. It uses
// positionedRead (platform-specific: unix.Pread on unix-family GOOS,
// os.File.ReadAt elsewhere) so windows can be requested out of order
// without the reader tracking a shared file offset.
type FileReader struct {
	file      *os.File
	length    int64
	blockSize int
	cache     Cache
}

// FileReaderOption configures NewFileReader.
type FileReaderOption func(*FileReader)

// WithBlockSize sets the window size in bytes. Default 4096.
func WithBlockSize(n int) FileReaderOption {
	return func(r *FileReader) { r.blockSize = n }
}

// WithCache sets the window cache. Default an 8-entry MRU cache.
func WithCache(c Cache) FileReaderOption {
	return func(r *FileReader) { r.cache = c }
}

// NewFileReader opens path for random-access reading.
func NewFileReader(path string, opts ...FileReaderOption) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("open", "%v", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ioErrorf("stat", "%v", err)
	}

	r := &FileReader{
		file:      f,
		length:    info.Size(),
		blockSize: defaultBlockSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		mru, err := NewMRUCache(defaultMRUCapacity)
		if err != nil {
			f.Close()
			return nil, err
		}
		r.cache = mru
	}
	return r, nil
}

// Length returns the file size observed at open time.
func (r *FileReader) Length() (int64, error) {
	return r.length, nil
}

// ReadByte returns the byte at pos, going through the window cache.
func (r *FileReader) ReadByte(pos int64) (byte, error) {
	w, err := r.Window(pos)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, ioErrorf("ReadByte", "position %d out of range [0,%d)", pos, r.length)
	}
	return w.Array[pos-w.Start], nil
}

// Window returns the block-aligned window containing pos, reading it from
// disk and inserting it into the cache on a miss.
func (r *FileReader) Window(pos int64) (*Window, error) {
	if pos < 0 || pos >= r.length {
		return nil, nil
	}
	start := (pos / int64(r.blockSize)) * int64(r.blockSize)
	if w := r.cache.Get(start); w != nil {
		return w, nil
	}

	size := r.blockSize
	if start+int64(size) > r.length {
		size = int(r.length - start)
	}
	buf := make([]byte, size)
	n, err := positionedRead(r.file, buf, start)
	if err != nil {
		return nil, ioErrorf("read", "%v", err)
	}

	w := &Window{Array: buf, Start: start, Length: n}
	r.cache.Put(w)
	return w, nil
}

// Close closes the underlying file and clears the cache.
func (r *FileReader) Close() error {
	r.cache.Clear()
	if err := r.file.Close(); err != nil {
		return ioErrorf("close", "%v", err)
	}
	return nil
}
