//go:build unix

package window

import (
	"os"

	"golang.org/x/sys/unix"
)

// positionedRead reads len(buf) bytes (or fewer at EOF) from f starting at
// off without disturbing any concurrently-used file offset, using a raw
// pread(2) via x/sys/unix — the teacher's own platform-split convention
// (simd/memchr_amd64.go vs simd/memchr_fallback.go) applied to file I/O
// instead of SIMD dispatch.
func positionedRead(f *os.File, buf []byte, off int64) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := unix.Pread(int(f.Fd()), buf[total:], off+int64(total))
		if n > 0 {
			total += n
		}
		if err != nil {
			if total > 0 {
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			break // EOF
		}
	}
	return total, nil
}
