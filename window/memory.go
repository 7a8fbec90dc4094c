package window

// ByteArrayReader wraps an in-memory byte slice as a Reader, matching
// reader/ByteArrayReader.java: the whole array is a single window and no
// cache is needed, since re-creating the window is free.
//
// The byte slice is not copied; callers must not mutate it while the
// reader is in use (matchers assume the underlying bytes are stable).
type ByteArrayReader struct {
	bytes  []byte
	window Window
}

// NewByteArrayReader wraps bytes for random-access reading.
func NewByteArrayReader(bytes []byte) *ByteArrayReader {
	return &ByteArrayReader{
		bytes:  bytes,
		window: Window{Array: bytes, Start: 0, Length: len(bytes)},
	}
}

// Length returns len(bytes).
func (r *ByteArrayReader) Length() (int64, error) {
	return int64(len(r.bytes)), nil
}

// ReadByte returns the byte at pos.
func (r *ByteArrayReader) ReadByte(pos int64) (byte, error) {
	if pos < 0 || pos >= int64(len(r.bytes)) {
		return 0, ioErrorf("ReadByte", "position %d out of range [0,%d)", pos, len(r.bytes))
	}
	return r.bytes[pos], nil
}

// Window returns the single backing window if pos is in range, or nil
// otherwise.
func (r *ByteArrayReader) Window(pos int64) (*Window, error) {
	if pos < 0 || pos >= int64(len(r.bytes)) {
		return nil, nil
	}
	return &r.window, nil
}

// Close is a no-op: ByteArrayReader owns no external resource.
func (r *ByteArrayReader) Close() error { return nil }
