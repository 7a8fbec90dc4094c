package sequence

import (
	"strings"

	"github.com/coregx/byteseek/byteseekerr"
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/window"
)

// ByteSequence is the specialized fast path for a sequence of OneByte
// matchers — i.e. a plain byte string, the common case for
// CASE_SENSITIVE_STRING patterns (spec.md §4.5).
//
// Subsequence and Reverse are O(1): both return a new ByteSequence
// sharing the same backing array, only start/end/reversed differ.
type ByteSequence struct {
	data     []byte
	start    int
	end      int
	reversed bool
}

// NewByteSequence wraps a byte slice as a case-sensitive SequenceMatcher.
// The slice is not copied.
func NewByteSequence(bytes []byte) *ByteSequence {
	return &ByteSequence{data: bytes, start: 0, end: len(bytes)}
}

// Len returns the logical length of the view.
func (s *ByteSequence) Len() int { return s.end - s.start }

// physicalByte returns the byte at logical index i, honouring the
// reversed flag.
func (s *ByteSequence) physicalByte(i int) byte {
	if s.reversed {
		return s.data[s.end-1-i]
	}
	return s.data[s.start+i]
}

// MatcherAt returns a OneByte matcher for the logical byte at i.
func (s *ByteSequence) MatcherAt(i int) bytematcher.Matcher {
	if i < 0 || i >= s.Len() {
		panic("sequence: MatcherAt index out of bounds")
	}
	return bytematcher.One(s.physicalByte(i))
}

// Matches bounds-checks pos then delegates to MatchesNoCheck.
func (s *ByteSequence) Matches(buf []byte, pos int) bool {
	n := s.Len()
	if pos < 0 || pos+n > len(buf) {
		return false
	}
	return s.MatchesNoCheck(buf, pos)
}

// MatchesNoCheck matches without bounds checking; caller must ensure
// pos+Len() <= len(buf).
func (s *ByteSequence) MatchesNoCheck(buf []byte, pos int) bool {
	n := s.Len()
	for i := 0; i < n; i++ {
		if buf[pos+i] != s.physicalByte(i) {
			return false
		}
	}
	return true
}

// MatchesReader matches starting at absolute position pos in r, spanning
// window boundaries transparently (spec.md §4.2).
func (s *ByteSequence) MatchesReader(r window.Reader, pos int64) (bool, error) {
	return matchesReaderGeneric(s, r, pos)
}

// Subsequence returns a view over logical range [begin, end), sharing
// the backing array.
func (s *ByteSequence) Subsequence(begin, end int) (Matcher, error) {
	n := s.Len()
	if begin < 0 || end > n || begin > end {
		return nil, byteseekerr.NewArgumentError("subsequence range out of bounds")
	}
	if begin == 0 && end == n {
		return s, nil
	}
	if s.reversed {
		return &ByteSequence{data: s.data, start: s.end - end, end: s.end - begin, reversed: true}, nil
	}
	return &ByteSequence{data: s.data, start: s.start + begin, end: s.start + end}, nil
}

// Reverse returns a view matching the same bytes in reverse order,
// sharing the backing array (O(1), no copy).
func (s *ByteSequence) Reverse() Matcher {
	return &ByteSequence{data: s.data, start: s.start, end: s.end, reversed: !s.reversed}
}

// Repeat returns a sequence of k concatenated copies. Repeat(1) returns
// the receiver.
func (s *ByteSequence) Repeat(k int) (Matcher, error) {
	if k < 1 {
		return nil, byteseekerr.NewArgumentError("repeat count must be >= 1")
	}
	if k == 1 {
		return s, nil
	}
	n := s.Len()
	out := make([]byte, 0, n*k)
	for r := 0; r < k; r++ {
		for i := 0; i < n; i++ {
			out = append(out, s.physicalByte(i))
		}
	}
	return NewByteSequence(out), nil
}

// ToRegex renders the sequence as a quoted byte string, space-separating
// bytes when pretty and any byte is not printable ASCII.
func (s *ByteSequence) ToRegex(pretty bool) string {
	n := s.Len()
	if allPrintable(s) {
		var b strings.Builder
		b.WriteByte('\'')
		for i := 0; i < n; i++ {
			c := s.physicalByte(i)
			if c == '\'' {
				b.WriteString(`\'`)
			} else {
				b.WriteByte(c)
			}
		}
		b.WriteByte('\'')
		return b.String()
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = bytematcher.One(s.physicalByte(i)).ToRegex(pretty)
	}
	sep := ""
	if pretty {
		sep = " "
	}
	return strings.Join(parts, sep)
}

func allPrintable(s *ByteSequence) bool {
	for i := 0; i < s.Len(); i++ {
		c := s.physicalByte(i)
		if c < 0x20 || c >= 0x7f {
			return false
		}
	}
	return true
}
