// Package window implements WindowReader (spec.md §3 C4): a random-access
// byte source that exposes contiguous windows with a pluggable cache
// policy, so that sequence and search algorithms can work uniformly over
// in-memory buffers, whole files, or streams read in fixed-size blocks.
//
// Grounded on the original domesdaybook/byteseek reader hierarchy
// (reader/ByteArrayReader.java, reader/FileReader.java,
// reader/RandomAccessFileReader.java, reader/cache/NoCache.java): this
// package keeps the same three-reader split (memory, file, streaming) and
// the no-op/most-recently-used cache distinction, expressed as idiomatic
// Go interfaces instead of a class hierarchy.
package window

import "github.com/coregx/byteseek/byteseekerr"

// Window is a contiguous slice of a byte source together with its
// absolute starting position and the count of valid bytes it holds.
//
// A Window is a borrowed view: it is only valid until the Reader that
// produced it is asked for another window that may evict it from cache,
// or until the Reader is closed. Callers must not retain a Window past
// that point (spec.md §3, §5).
type Window struct {
	// Array is the backing byte slice. Only Array[:Length] is valid;
	// array capacity may exceed Length for a short final window.
	Array []byte

	// Start is the absolute position of Array[0] in the source.
	Start int64

	// Length is the number of valid bytes in Array.
	Length int
}

// byteAt returns the byte at absolute position pos, which must fall
// within [Start, Start+Length).
func (w *Window) byteAt(pos int64) byte {
	return w.Array[pos-w.Start]
}

// contains reports whether absolute position pos falls within this window.
func (w *Window) contains(pos int64) bool {
	return pos >= w.Start && pos < w.Start+int64(w.Length)
}

// end returns the absolute position one past the last valid byte.
func (w *Window) end() int64 {
	return w.Start + int64(w.Length)
}

// Reader is a random-access byte source.
//
// Reader is the Go counterpart of spec.md's WindowReader: Length,
// ReadByte and Window(pos) together let a SequenceMatcher or Searcher
// consume bytes without knowing whether they come from memory, a file or
// a stream. Implementations own any underlying resources (file
// descriptors, caches) and must release them in Close.
type Reader interface {
	// Length returns the total number of bytes available, or an error
	// wrapping byteseekerr.ErrIO if the length cannot be determined.
	Length() (int64, error)

	// ReadByte returns the byte at pos, or an error wrapping
	// byteseekerr.ErrIO if pos is out of range or unreadable.
	ReadByte(pos int64) (byte, error)

	// Window returns the window containing pos, or (nil, nil) if pos is
	// out of range. An error is only returned for genuine I/O failure.
	//
	// The returned Window is borrowed: see the Window doc comment.
	Window(pos int64) (*Window, error)

	// Close releases any resources (file descriptors, cached windows)
	// held by the reader.
	Close() error
}

// Cache is the pluggable eviction policy for a Reader's windows, mirroring
// reader/cache/WindowCache.java's contract.
type Cache interface {
	// Get returns the cached window starting exactly at start, or nil if
	// it is not (or no longer) cached.
	Get(start int64) *Window

	// Put offers window to the cache; the cache may evict any other
	// window to make room, or do nothing at all.
	Put(w *Window)

	// Clear discards every cached window.
	Clear()
}

// NoCache is a Cache that never retains anything, matching
// reader/cache/NoCache.java. Every Window(pos) call re-reads from the
// source. Appropriate for ByteArrayReader-style sources where re-creating
// a window is free.
type NoCache struct{}

// Get always reports a cache miss.
func (NoCache) Get(int64) *Window { return nil }

// Put is a no-op.
func (NoCache) Put(*Window) {}

// Clear is a no-op.
func (NoCache) Clear() {}

// MRUCache retains up to capacity most-recently-used windows, matching
// WindowCacheMostRecentlyUsed in the original reader hierarchy.
type MRUCache struct {
	capacity int
	order    []int64 // MRU at the end
	windows  map[int64]*Window
}

// NewMRUCache returns a Cache retaining up to capacity windows. capacity
// must be positive.
func NewMRUCache(capacity int) (*MRUCache, error) {
	if capacity <= 0 {
		return nil, byteseekerr.NewArgumentError("MRU cache capacity must be positive")
	}
	return &MRUCache{
		capacity: capacity,
		windows:  make(map[int64]*Window, capacity),
	}, nil
}

// Get returns the cached window for start, if present, marking it
// most-recently-used.
func (c *MRUCache) Get(start int64) *Window {
	w, ok := c.windows[start]
	if !ok {
		return nil
	}
	c.touch(start)
	return w
}

// Put inserts w, evicting the least-recently-used window if the cache is
// at capacity.
func (c *MRUCache) Put(w *Window) {
	if _, exists := c.windows[w.Start]; exists {
		c.windows[w.Start] = w
		c.touch(w.Start)
		return
	}
	if len(c.windows) >= c.capacity {
		lru := c.order[0]
		c.order = c.order[1:]
		delete(c.windows, lru)
	}
	c.windows[w.Start] = w
	c.order = append(c.order, w.Start)
}

// Clear discards every cached window.
func (c *MRUCache) Clear() {
	c.windows = make(map[int64]*Window, c.capacity)
	c.order = nil
}

func (c *MRUCache) touch(start int64) {
	for i, s := range c.order {
		if s == start {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, start)
}
