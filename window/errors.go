package window

import (
	"fmt"

	"github.com/coregx/byteseek/byteseekerr"
)

// ioErrorf builds a byteseekerr.IOError with a formatted message, keeping
// every Reader implementation's error construction uniform.
func ioErrorf(op, format string, args ...any) error {
	return &byteseekerr.IOError{Op: op, Err: fmt.Errorf(format, args...)}
}
