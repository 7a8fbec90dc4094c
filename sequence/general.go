package sequence

import (
	"strings"

	"github.com/coregx/byteseek/byteseekerr"
	"github.com/coregx/byteseek/bytematcher"
	"github.com/coregx/byteseek/window"
)

// GeneralSequence is the general-purpose SequenceMatcher for sequences
// that mix ByteMatcher kinds — e.g. a case-insensitive string, where each
// letter position holds a 2-byte Set rather than a OneByte.
//
// Like ByteSequence, Subsequence and Reverse share the backing slice.
type GeneralSequence struct {
	matchers []bytematcher.Matcher
	start    int
	end      int
	reversed bool
}

func newGeneral(matchers []bytematcher.Matcher) *GeneralSequence {
	cp := append([]bytematcher.Matcher(nil), matchers...)
	return &GeneralSequence{matchers: cp, start: 0, end: len(cp)}
}

// Len returns the logical length of the view.
func (s *GeneralSequence) Len() int { return s.end - s.start }

func (s *GeneralSequence) matcherAtPhysical(i int) bytematcher.Matcher {
	if s.reversed {
		return s.matchers[s.end-1-i]
	}
	return s.matchers[s.start+i]
}

// MatcherAt returns the ByteMatcher at logical index i.
func (s *GeneralSequence) MatcherAt(i int) bytematcher.Matcher {
	if i < 0 || i >= s.Len() {
		panic("sequence: MatcherAt index out of bounds")
	}
	return s.matcherAtPhysical(i)
}

// Matches bounds-checks pos then delegates to MatchesNoCheck.
func (s *GeneralSequence) Matches(buf []byte, pos int) bool {
	n := s.Len()
	if pos < 0 || pos+n > len(buf) {
		return false
	}
	return s.MatchesNoCheck(buf, pos)
}

// MatchesNoCheck matches without bounds checking.
func (s *GeneralSequence) MatchesNoCheck(buf []byte, pos int) bool {
	n := s.Len()
	for i := 0; i < n; i++ {
		if !s.matcherAtPhysical(i).Matches(buf[pos+i]) {
			return false
		}
	}
	return true
}

// MatchesReader matches starting at absolute position pos in r, spanning
// window boundaries.
func (s *GeneralSequence) MatchesReader(r window.Reader, pos int64) (bool, error) {
	return matchesReaderGeneric(s, r, pos)
}

// Subsequence returns a view over logical range [begin, end).
func (s *GeneralSequence) Subsequence(begin, end int) (Matcher, error) {
	n := s.Len()
	if begin < 0 || end > n || begin > end {
		return nil, byteseekerr.NewArgumentError("subsequence range out of bounds")
	}
	if begin == 0 && end == n {
		return s, nil
	}
	if end-begin == 1 {
		return New([]bytematcher.Matcher{s.matcherAtPhysical(begin)})
	}
	if s.reversed {
		return &GeneralSequence{matchers: s.matchers, start: s.end - end, end: s.end - begin, reversed: true}, nil
	}
	return &GeneralSequence{matchers: s.matchers, start: s.start + begin, end: s.start + end}, nil
}

// Reverse returns a view matching the same bytes in reverse order.
func (s *GeneralSequence) Reverse() Matcher {
	return &GeneralSequence{matchers: s.matchers, start: s.start, end: s.end, reversed: !s.reversed}
}

// Repeat returns a sequence of k concatenated copies.
func (s *GeneralSequence) Repeat(k int) (Matcher, error) {
	if k < 1 {
		return nil, byteseekerr.NewArgumentError("repeat count must be >= 1")
	}
	if k == 1 {
		return s, nil
	}
	n := s.Len()
	out := make([]bytematcher.Matcher, 0, n*k)
	for r := 0; r < k; r++ {
		for i := 0; i < n; i++ {
			out = append(out, s.matcherAtPhysical(i))
		}
	}
	return New(out)
}

// ToRegex renders each position's matcher, space-separated when pretty.
func (s *GeneralSequence) ToRegex(pretty bool) string {
	n := s.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = s.matcherAtPhysical(i).ToRegex(pretty)
	}
	sep := ""
	if pretty {
		sep = " "
	}
	return strings.Join(parts, sep)
}
