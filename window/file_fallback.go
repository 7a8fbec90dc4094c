//go:build !unix

package window

import (
	"io"
	"os"
)

// positionedRead is the portable fallback for platforms without a pread(2)
// syscall wrapper in x/sys/unix, using os.File.ReadAt.
func positionedRead(f *os.File, buf []byte, off int64) (int, error) {
	n, err := f.ReadAt(buf, off)
	if err == io.EOF {
		err = nil
	}
	return n, err
}
